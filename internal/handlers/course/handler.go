package course

import (
	"net/http"
	"nutricoach/infras/otel"
	"nutricoach/internal/domains/course/model"
	"nutricoach/internal/domains/course/model/dto"
	"nutricoach/internal/domains/course/service"
	"nutricoach/shared/constant"
	gDto "nutricoach/shared/dto"
	"nutricoach/shared/validator"
	"nutricoach/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Course
	otel    otel.Otel
}

func New(service service.Course, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Post("/course-access/verify", handler.VerifyAccess)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/course-access", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAllAccess)
		routerGroup.Post("/", handler.GrantAccess)
		routerGroup.Delete("/{id}", handler.RevokeAccess)
	})
}

// VerifyAccess answers whether an email may enter the course area.
func (handler *Handler) VerifyAccess(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyAccess")
	defer scope.End()

	req := dto.VerifyAccessRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.VerifyAccess(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify course access")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GrantAccess(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GrantAccess")
	defer scope.End()

	req := dto.GrantAccessRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	access, err := handler.service.GrantAccess(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to grant course access")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Course access granted by user " + user)

	response.WithJSON(w, http.StatusCreated, access)
}

func (handler *Handler) GetAllAccess(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllAccess")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if email := r.URL.Query().Get(model.FieldEmail); email != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.AccessTableName,
		})
	}

	records, err := handler.service.GetAllAccess(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get course access records")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, records)
}

func (handler *Handler) RevokeAccess(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RevokeAccess")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.RevokeAccess(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to revoke course access")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Course access revoked by user " + user)

	response.WithMessage(w, http.StatusOK, "Course access revoked successfully")
}
