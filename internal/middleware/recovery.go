package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"startupbridge/internal/contextutils"
	"startupbridge/internal/response"
	"startupbridge/internal/services"

	"go.uber.org/zap"
)

// RecoveryConfig holds panic recovery settings
type RecoveryConfig struct {
	EnableStackTrace bool `json:"enable_stack_trace"`
	MaxStackFrames   int  `json:"max_stack_frames"`
}

// DefaultRecoveryConfig returns the default recovery configuration
func DefaultRecoveryConfig() *RecoveryConfig {
	return &RecoveryConfig{
		EnableStackTrace: true,
		MaxStackFrames:   32,
	}
}

// Recovery turns a panicking handler into an INTERNAL_ERROR envelope
func Recovery(config *RecoveryConfig, builder *response.Builder, logger *zap.Logger) func(http.Handler) http.Handler {
	if config == nil {
		config = DefaultRecoveryConfig()
	}
	if builder == nil {
		builder = response.NewBuilder(nil, logger)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// Let net/http abort the connection as it normally would
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logPanic(contextutils.GetLogger(r.Context(), logger), r, rec, config)

				err := services.NewInternalError("Internal server error")
				err.Cause = fmt.Errorf("panic: %v", rec)
				builder.WriteError(w, r, err)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func logPanic(logger *zap.Logger, r *http.Request, rec interface{}, config *RecoveryConfig) {
	fields := []zap.Field{
		zap.String("event", "panic_recovered"),
		zap.Any("panic_error", rec),
		zap.String("panic_type", fmt.Sprintf("%T", rec)),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
		zap.Int("goroutines", runtime.NumGoroutine()),
	}
	if config.EnableStackTrace {
		fields = append(fields, zap.Strings("stack_trace", captureStackTrace(config.MaxStackFrames)))
	}

	logger.Error("Panic recovered", fields...)
}

// captureStackTrace skips the runtime and recovery frames
func captureStackTrace(maxFrames int) []string {
	if maxFrames <= 0 {
		maxFrames = 32
	}
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(4, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		stack = append(stack, fmt.Sprintf("%s (%s:%d)", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return stack
}
