package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stl-ops/dashboard/internal/domain"
	"github.com/stl-ops/dashboard/internal/pkg/logger"
	"github.com/stl-ops/dashboard/internal/pkg/store"
)

type backfillRequest struct {
	Items []store.DrawMetricUpsert `json:"items" validate:"required,min=1,dive"`
}

// Backfill upserts historical draw metrics. Only mounted when the service
// runs against Postgres; the upstream-sourced deployment has no local rows
// to write.
func (c *Controller) Backfill(ctx echo.Context) error {
	var req backfillRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	affected, err := c.st.UpsertDrawMetrics(ctx.Request().Context(), req.Items)
	if err != nil {
		return err
	}

	logger.Infof(ctx.Request().Context(), "backfilled %d draw metric rows", affected)
	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Success: true,
		Data:    map[string]int64{"affected": affected},
	})
}
