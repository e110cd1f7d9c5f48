package controller

import (
	"github.com/stl-ops/dashboard/internal/pkg/store"
	"github.com/stl-ops/dashboard/internal/service/compare"
)

type Controller struct {
	bets *compare.Service
	wins *compare.Service

	// nil when records come from the upstream service instead of Postgres
	st store.Store
}

func NewController(bets, wins *compare.Service, st store.Store) *Controller {
	return &Controller{bets: bets, wins: wins, st: st}
}
