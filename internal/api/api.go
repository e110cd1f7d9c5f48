package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/stl-ops/dashboard/internal/api/controller"
	"github.com/stl-ops/dashboard/internal/pkg/logger"
	"github.com/stl-ops/dashboard/internal/pkg/store"
	"github.com/stl-ops/dashboard/internal/service/compare"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Router exposes the underlying echo instance for tests.
func (svc *APIService) Router() *echo.Echo {
	return svc.router
}

// NewAPIService wires the HTTP surface. st may be nil; the backfill route is
// only mounted when the service owns a Postgres store.
func NewAPIService(bets, wins *compare.Service, st store.Store, corsOrigins []string) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(bets, wins, st)

	api.GET("/healthz", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	betsGroup := api.Group("/bets")
	betsGroup.POST("/compare", cntrl.CompareBets)

	winsGroup := api.Group("/wins")
	winsGroup.POST("/compare", cntrl.CompareWins)

	api.POST("/compare", cntrl.CompareBoth)
	api.GET("/regions", cntrl.Regions)

	if st != nil {
		api.POST("/records/backfill", cntrl.Backfill)
	}

	return svc, nil
}
