package staff

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/staff/model"
	"hotelier/internal/domains/staff/model/dto"
	"hotelier/internal/domains/staff/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Staff
	otel    otel.Otel
}

func New(service service.Staff, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStaff)
		routerGroup.Get("/", handler.GetStaff)
	})
}

// CreateStaff registers a new staff member.
// @Summary Create a new staff member
// @Description Register a staff member with their role and contact details.
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Create Staff Request"
// @Success 201 {object} response.Data[dto.StaffResponse] "Staff created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/staff [post]
func (handler *Handler) CreateStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaff")
	defer scope.End()

	req := dto.CreateStaffRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create staff")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Staff created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetStaff lists staff members.
// @Summary Get all staff members
// @Description Retrieve staff members with optional role filtering and pagination.
// @Tags Staff
// @Accept json
// @Produce json
// @Param role query string false "Filter by role"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Data[dto.GetStaffResponse] "List of staff members"
// @Failure 500 {object} response.Error
// @Router /api/staff [get]
func (handler *Handler) GetStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	role := request.URL.Query().Get(model.FieldRole)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRole,
				Operator: gDto.FilterOperatorLike,
				Value:    role,
				Table:    model.TableName,
			},
		},
	}

	staffList, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Staff retrieved successfully")

	response.WithJSON(writer, http.StatusOK, staffList)
}
