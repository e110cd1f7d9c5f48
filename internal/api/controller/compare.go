package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/stl-ops/dashboard/internal/domain"
	"github.com/stl-ops/dashboard/internal/service/compare"
)

func (c *Controller) CompareBets(ctx echo.Context) error {
	return c.compareOne(ctx, c.bets)
}

func (c *Controller) CompareWins(ctx echo.Context) error {
	return c.compareOne(ctx, c.wins)
}

func (c *Controller) compareOne(ctx echo.Context, svc *compare.Service) error {
	var req domain.ComparisonRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	comparison, err := svc.Compare(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{Success: true, Data: comparison})
}

// CompareBoth runs the same comparison over both metric domains
// concurrently, for the dashboard's side-by-side overview.
func (c *Controller) CompareBoth(ctx echo.Context) error {
	var req domain.ComparisonRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	var (
		bets *compare.Comparison
		wins *compare.Comparison
	)

	eg, egCtx := errgroup.WithContext(ctx.Request().Context())
	eg.Go(func() error {
		var err error
		bets, err = c.bets.Compare(egCtx, req)
		return err
	})
	eg.Go(func() error {
		var err error
		wins, err = c.wins.Compare(egCtx, req)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	type response struct {
		Bets *compare.Comparison `json:"bets"`
		Wins *compare.Comparison `json:"wins"`
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Success: true,
		Data:    response{Bets: bets, Wins: wins},
	})
}
