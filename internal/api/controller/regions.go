package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stl-ops/dashboard/internal/domain"
	"github.com/stl-ops/dashboard/internal/pkg/constants"
)

// Regions returns the fixed region ordering for one metric domain. The two
// lists differ and the frontend must use the right one per chart.
func (c *Controller) Regions(ctx echo.Context) error {
	switch ctx.QueryParams().Get("domain") {
	case "bets":
		return ctx.JSON(http.StatusOK, domain.APIResponse{Success: true, Data: c.bets.Regions()})
	case "wins":
		return ctx.JSON(http.StatusOK, domain.APIResponse{Success: true, Data: c.wins.Regions()})
	default:
		return constants.ErrUnknownDomain
	}
}
