package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// CtxKeyRequestID is where the api middleware puts the request id.
var CtxKeyRequestID = ctxKey{}

var global *zap.SugaredLogger

func init() {
	l, _ := zap.NewProduction()
	global = l.Sugar()
}

// Init replaces the global logger, e.g. with a development config from main.
func Init(l *zap.Logger) {
	global = l.Sugar()
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if reqID, ok := ctx.Value(CtxKeyRequestID).(string); ok {
			return global.With("request_id", reqID)
		}
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Debugf(format, args...)
}

func Info(ctx context.Context, msg string) {
	fromCtx(ctx).Info(msg)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, msg string) {
	fromCtx(ctx).Error(msg)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, err error) {
	if err == nil {
		return
	}
	fromCtx(ctx).Fatal(err.Error())
}
