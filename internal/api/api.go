package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/voltplan/loadcalc/internal/api/controller"
	"github.com/voltplan/loadcalc/internal/pkg/constants"
	"github.com/voltplan/loadcalc/internal/pkg/logger"
	"github.com/voltplan/loadcalc/internal/pkg/store"
	"github.com/voltplan/loadcalc/internal/service/electrical"
	"github.com/voltplan/loadcalc/internal/service/hvac"
	"github.com/voltplan/loadcalc/internal/service/importer"
	"github.com/voltplan/loadcalc/internal/service/regulation"
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

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Logger.SetLevel(log.WARN)
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(svc.RequestIDMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	provider := regulation.NewProvider(st)

	hvacService := hvac.NewService()
	if path := viper.GetString(constants.ViperDesignConditionsCSV); path != "" {
		var err error
		if hvacService, err = hvac.NewServiceFromCSV(path); err != nil {
			return nil, err
		}
	}

	cntrl := controller.NewController(
		electrical.NewService(provider),
		hvacService,
		importer.NewService(st),
		st,
	)

	api := svc.router.Group("/api/v1")

	calc := api.Group("/calc")
	calc.POST("/electrical", cntrl.CalculateElectrical)
	calc.POST("/hvac", cntrl.CalculateHVAC)

	regs := api.Group("/regulations")
	regs.GET("/frameworks", cntrl.ListFrameworks)
	regs.POST("/backfill", cntrl.BackfillLoadFactors, svc.AdminMiddleware)

	return svc, nil
}
