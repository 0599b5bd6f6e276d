package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/voltplan/loadcalc/internal/api"
	"github.com/voltplan/loadcalc/internal/pkg/constants"
	"github.com/voltplan/loadcalc/internal/pkg/logger"
	"github.com/voltplan/loadcalc/internal/pkg/store"
	"github.com/voltplan/loadcalc/internal/pkg/store/xpgx"
)

func main() {
	ctx := context.Background()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/loadcalc")
	viper.SetDefault(constants.ViperListenAddr, ":8080")
	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(ctx, "no config file, using defaults and env: %s", err.Error())
	}
	viper.AutomaticEnv()

	l, err := zap.NewProduction()
	logger.Fatal(ctx, err)
	logger.Init(l)

	var st store.Store
	if dsn := viper.GetString(constants.ViperDatabaseDSN); dsn != "" {
		pool, err := xpgx.NewPool(ctx, dsn)
		logger.Fatal(ctx, err)
		defer pool.Close()

		// the database may still be coming up alongside the service
		err = backoff.Retry(
			func() error { return pool.Ping(ctx) },
			backoff.WithContext(
				backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 30),
				ctx,
			),
		)
		logger.Fatal(ctx, err)

		st = store.NewStore(pool)
	} else {
		logger.Warnf(ctx, "no database configured, calculations will use built-in reference data")
	}

	svc, err := api.NewAPIService(st)
	logger.Fatal(ctx, err)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop

		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		logger.Fatal(ctx, svc.Shutdown(shutdownCtx))
	}()

	svc.Serve(viper.GetString(constants.ViperListenAddr))
}
