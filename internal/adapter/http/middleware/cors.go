package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"clientportal/internal/config"
)

// CORS allows credentialed requests from the configured origins. With no
// origins configured, development allows any origin and other environments
// deny cross-origin requests.
func CORS(cfg *config.CORSConfig, environment string, logger *zap.Logger) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-Signature"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	anyOrigin := func(_ *http.Request, origin string) bool { return origin != "" }
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			options.AllowOriginFunc = anyOrigin
			if environment != "development" && environment != "local" {
				logger.Warn("[http][cors] wildcard origin outside development", zap.String("environment", environment))
			}
			return cors.Handler(options)
		}
	}

	switch {
	case len(cfg.AllowedOrigins) > 0:
		options.AllowedOrigins = cfg.AllowedOrigins
		logger.Info("[http][cors] explicit origins", zap.Strings("origins", cfg.AllowedOrigins))
	case environment == "development" || environment == "local" || environment == "":
		options.AllowOriginFunc = anyOrigin
	default:
		options.AllowOriginFunc = func(*http.Request, string) bool { return false }
		logger.Warn("[http][cors] no allowed origins configured, cross-origin requests denied")
	}
	return cors.Handler(options)
}
