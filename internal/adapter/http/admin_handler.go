package http

import (
	"context"
	"net/http"

	"creditnest/internal/usecase/debt"
	"creditnest/pkg/logger"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	agg *debt.Aggregator
	log logger.Logger
}

func NewAdminHandler(agg *debt.Aggregator, log logger.Logger) *AdminHandler {
	return &AdminHandler{agg: agg, log: log}
}

// RefreshDebts kicks off a debt aggregation sweep in the background and
// returns immediately; the sweep logs its own outcome.
func (h *AdminHandler) RefreshDebts(c echo.Context) error {
	go func() {
		if err := h.agg.Refresh(context.Background()); err != nil {
			h.log.Error("debt sweep aborted", "error", err)
		}
	}()
	return c.JSON(http.StatusAccepted, map[string]any{"started": true})
}
