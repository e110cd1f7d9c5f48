package main

import (
	"context"
	"strings"

	"github.com/spf13/viper"

	"github.com/stl-ops/dashboard/internal/api"
	"github.com/stl-ops/dashboard/internal/pkg/constants"
	"github.com/stl-ops/dashboard/internal/pkg/logger"
	"github.com/stl-ops/dashboard/internal/pkg/store"
	"github.com/stl-ops/dashboard/internal/pkg/store/xpgx"
	"github.com/stl-ops/dashboard/internal/service/compare"
	"github.com/stl-ops/dashboard/internal/service/records"
)

func main() {
	ctx := context.Background()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/stl-dashboard")
	viper.SetEnvPrefix("DASHBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault(constants.ViperKeyListenAddr, ":8080")
	viper.SetDefault(constants.ViperKeyLogLevel, "info")
	viper.SetDefault(constants.ViperKeyCORSOrigins, []string{"http://localhost:3000"})

	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(ctx, "no config file found, using env and defaults: %s", err.Error())
	}

	if err := logger.Init(viper.GetString(constants.ViperKeyLogLevel)); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	source, st, cleanup, err := buildRecordSource(ctx)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer cleanup()

	bets := compare.NewService(compare.Betting(), source)
	wins := compare.NewService(compare.Winning(), source)

	svc, err := api.NewAPIService(bets, wins, st, viper.GetStringSlice(constants.ViperKeyCORSOrigins))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	addr := viper.GetString(constants.ViperKeyListenAddr)
	logger.Infof(ctx, "listening on %s", addr)
	svc.Serve(addr)
}

// buildRecordSource prefers Postgres when a DSN is configured and falls back
// to the upstream REST record source. The store is nil in upstream mode.
func buildRecordSource(ctx context.Context) (compare.RecordSource, store.Store, func(), error) {
	if dsn := viper.GetString(constants.ViperKeyPostgresDSN); dsn != "" {
		pool, err := xpgx.NewPool(ctx, dsn)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Infof(ctx, "record source: postgres")
		st := store.NewStore(pool)
		return st, st, pool.Close, nil
	}

	base := viper.GetString(constants.ViperKeyUpstreamURL)
	if base == "" {
		return nil, nil, nil, constants.ErrUpstreamUnavailable
	}
	logger.Infof(ctx, "record source: upstream %s", base)
	return records.NewClient(base), nil, func() {}, nil
}
