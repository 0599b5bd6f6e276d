package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/voltplan/loadcalc/internal/pkg/constants"
	"github.com/voltplan/loadcalc/internal/pkg/logger"
	"github.com/voltplan/loadcalc/internal/pkg/utils"
)

// RequestIDMiddleware tags the request context so log lines from one
// calculation run correlate.
func (svc *APIService) RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		req := ctx.Request()
		reqCtx := context.WithValue(req.Context(), logger.CtxKeyRequestID, uuid.NewString())
		ctx.SetRequest(req.WithContext(reqCtx))

		return next(ctx)
	}
}

func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
		if err != nil {
			return constants.ErrUnauthorized
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		if token.Secret != viper.GetString(constants.ViperSecretKey) {
			return constants.ErrUnauthorized
		}

		req := ctx.Request()
		reqCtx := context.WithValue(req.Context(), constants.CtxKeyUserID, token.UserID)
		ctx.SetRequest(req.WithContext(reqCtx))

		return next(ctx)
	}
}
