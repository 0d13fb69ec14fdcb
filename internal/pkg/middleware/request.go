package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/saferoute/internal/pkg/context"
	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/utils"
)

// RequestID makes sure every status request carries an X-Request-ID, in
// its context and echoed on the response
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := appctx.FromEchoContext(c)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, appctx.GetRequestID(ctx))
			return next(c)
		}
	}
}

// PanicRecovery turns a handler panic into a 500 and logs the stack
func PanicRecovery(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		zapLogger = logger.GetGlobalLogger()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				zapLogger.Error("Panic recovered during request processing",
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.String("request_id", appctx.GetRequestID(c.Request().Context())),
					logger.String("panic_type", fmt.Sprintf("%T", r)),
					logger.Any("panic_value", r),
					logger.String("stack_trace", string(debug.Stack())))

				if !c.Response().Committed {
					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
