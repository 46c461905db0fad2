package maintenance

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/maintenance/service"
	"hotelier/shared/constant"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Maintenance
	middleware middleware.Admin
	otel       otel.Otel
}

func New(service service.Maintenance, middleware middleware.Admin, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)
		routerGroup.Delete("/drop-database", handler.DropDatabase)
	})
}

// DropDatabase wipes and recreates the schema.
// @Summary Drop and recreate all tables
// @Description Destructive maintenance operation. All records are lost.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Database reset successfully"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/drop-database [delete]
// @Security ApiKeyAuth
func (handler *Handler) DropDatabase(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DropDatabase")
	defer scope.End()

	if err := handler.service.ResetDatabase(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset database")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Database reset successfully")

	response.WithMessage(writer, http.StatusOK, "Database reset successfully")
}
