package router

import (
	"net/http"

	"startupbridge/internal/config"
	"startupbridge/internal/handlers/health"
	"startupbridge/internal/middleware"
	"startupbridge/internal/response"
	"startupbridge/internal/services"

	_ "startupbridge/internal/docs" // registers the swagger document

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies groups everything the route table needs
type Dependencies struct {
	Services        *services.ServiceCollection
	Config          *config.Config
	ResponseBuilder *response.Builder
	Logger          *zap.Logger
}

// SetupRouter configures all HTTP routes and wraps them in the middleware chain
func SetupRouter(deps *Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	builder := deps.ResponseBuilder
	if builder == nil {
		builder = response.NewBuilder(nil, logger)
	}

	r := mux.NewRouter()
	r.Use(middleware.Metrics)

	// System routes
	r.Handle("/health", health.Handler(deps.Services, builder, deps.Config.Server.Environment)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(middleware.SwaggerHandler(nil))

	addAPIRoutes(r.PathPrefix("/api").Subrouter(), deps.Services, builder, logger)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		builder.WriteError(w, req, services.NewNotFoundError("Endpoint not found"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		builder.WriteJSON(w, req, &response.ErrorResponse{
			Success: false,
			Error:   "Method not allowed",
		}, http.StatusMethodNotAllowed)
	})

	return setupMiddlewareChain(r, deps.Config, builder, logger)
}

// setupMiddlewareChain applies middleware outermost first
func setupMiddlewareChain(handler http.Handler, cfg *config.Config, builder *response.Builder, logger *zap.Logger) http.Handler {
	loggingConfig := middleware.DefaultLoggingConfig()
	recoveryConfig := middleware.DefaultRecoveryConfig()
	if cfg.IsProduction() {
		recoveryConfig.EnableStackTrace = false
	}

	chain := []func(http.Handler) http.Handler{
		middleware.RequestID(logger),
		middleware.StructuredLogging(loggingConfig),
		middleware.Recovery(recoveryConfig, builder, logger),
		middleware.SecurityHeaders,
		middleware.CORS(middleware.CORSConfigFromServer(&cfg.Server)),
	}

	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}
	return handler
}
