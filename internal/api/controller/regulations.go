package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voltplan/loadcalc/internal/pkg/constants"
	"github.com/voltplan/loadcalc/internal/pkg/logger"
)

var errNoStore = constants.NewCodedError(http.StatusServiceUnavailable, "no reference-data store configured")

func (c *Controller) ListFrameworks(ctx echo.Context) error {
	if c.store == nil {
		return errNoStore
	}

	frameworks, err := c.store.ListFrameworks(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, frameworks)
}

func (c *Controller) BackfillLoadFactors(ctx echo.Context) error {
	if c.store == nil {
		return errNoStore
	}

	sourceURL := ctx.QueryParams().Get("source_url")
	if sourceURL == "" {
		return fmt.Errorf("empty source_url")
	}

	reqCtx := ctx.Request().Context()
	logger.Infof(reqCtx, "load-factor backfill from %s requested by user %v",
		sourceURL, reqCtx.Value(constants.CtxKeyUserID))

	factors, err := c.importer.BackfillLoadFactors(reqCtx, sourceURL)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, factors)
}
