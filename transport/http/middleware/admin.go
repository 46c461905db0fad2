package middleware

import (
	"crypto/subtle"
	"net/http"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/transport/http/response"
)

// Admin gates destructive maintenance endpoints behind a shared API key.
type Admin interface {
	APIKey(next http.Handler) http.Handler
}

type adminImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAdminMiddleware(otel otel.Otel, cfg *config.Config) Admin {
	return &adminImpl{
		otel: otel,
		cfg:  cfg,
	}
}

func (m *adminImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		// An unset key disables the endpoint entirely rather than leaving
		// it open.
		if m.cfg.App.AdminKey == "" {
			err := failure.Forbidden("Maintenance endpoints are disabled")

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.AdminKey)) != 1 {
			err := failure.Forbidden("Invalid API key")

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
