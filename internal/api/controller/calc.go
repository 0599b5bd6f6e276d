package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voltplan/loadcalc/internal/domain/dto"
)

func (c *Controller) CalculateElectrical(ctx echo.Context) error {
	req := new(dto.ElectricalRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	result, err := c.electrical.Calculate(ctx.Request().Context(), &req.Inputs, req.Regulatory)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) CalculateHVAC(ctx echo.Context) error {
	req := new(dto.HVACRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	result, err := c.hvac.Calculate(ctx.Request().Context(), req.Params, req.Rooms)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}
