package handlers

import (
	"context"
	"errors"
	"net/http"

	request "cleanmatch/internal/adapter/http/dto/request"
	response "cleanmatch/internal/adapter/http/dto/response"
	"cleanmatch/internal/adapter/http/middleware"
	"cleanmatch/internal/domain/entities"
	"cleanmatch/internal/usecase"
	"cleanmatch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)
	errMissingActor          = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing authenticated actor", http.StatusUnauthorized)
)

// RequestHandler exposes the request lifecycle engine over HTTP. The
// authenticated actor always comes from the auth middleware; route params
// and payloads never override it.

type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

func (h *RequestHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.CreateRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor.ID, payload.ToCommand())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequest(created))
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

func (h *RequestHandler) ListGeneral(c *gin.Context) {
	requests, err := h.usecase.ListGeneral(c.Request.Context())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequests(requests))
}

func (h *RequestHandler) ListForCleaner(c *gin.Context) {
	h.listOwned(c, c.Param("cleanerId"), h.usecase.ListForCleaner)
}

func (h *RequestHandler) CompletedForCleaner(c *gin.Context) {
	h.listOwned(c, c.Param("cleanerId"), h.usecase.CompletedForCleaner)
}

func (h *RequestHandler) ListForClient(c *gin.Context) {
	h.listOwned(c, c.Param("clientId"), h.usecase.ListForClient)
}

func (h *RequestHandler) CompletedForClient(c *gin.Context) {
	h.listOwned(c, c.Param("clientId"), h.usecase.CompletedForClient)
}

// listOwned serves the per-account listings; actors can only list their own
// requests.
func (h *RequestHandler) listOwned(
	c *gin.Context,
	ownerID string,
	list func(ctx context.Context, id string) ([]entities.Request, error),
) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}
	if actor.ID != ownerID {
		appErr := mapRequestError(usecase.ErrForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	requests, err := list(c.Request.Context(), ownerID)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequests(requests))
}

func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), actor.ID, entities.RequestStatus(payload.Status))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func (h *RequestHandler) AcceptGeneral(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	updated, err := h.usecase.AcceptGeneral(c.Request.Context(), c.Param("id"), actor.ID)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func (h *RequestHandler) Apply(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	updated, err := h.usecase.ApplyToOffer(c.Request.Context(), c.Param("id"), actor.ID)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func (h *RequestHandler) SelectApplication(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.SelectApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SelectApplication(c.Request.Context(), c.Param("id"), actor.ID, payload.CleanerID)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func (h *RequestHandler) CancelByClient(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	updated, err := h.usecase.CancelByClient(c.Request.Context(), c.Param("id"), actor.ID)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func (h *RequestHandler) Rate(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.RateRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Rate(c.Request.Context(), c.Param("id"), actor.ID, payload.Rating, payload.Review)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidActorID),
		errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrCleanerRequired),
		errors.Is(err, usecase.ErrInvalidRequestType),
		errors.Is(err, usecase.ErrInvalidTimeRange),
		errors.Is(err, usecase.ErrGeneralOnlyFields),
		errors.Is(err, usecase.ErrDeadlineInPast),
		errors.Is(err, usecase.ErrOutsideSchedule),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidRating):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCleanerNotFound):
		return pkg.NewDomainErrorSimple("CLEANER_NOT_FOUND", "Cleaner not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this request", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status does not permit this transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferNotOpen):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_AVAILABLE", "Request is no longer available", http.StatusConflict)
	case errors.Is(err, usecase.ErrDeadlinePassed):
		return pkg.NewDomainErrorSimple("DEADLINE_PASSED", "Application deadline has passed", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return pkg.NewDomainErrorSimple("ALREADY_APPLIED", "Cleaner already applied to this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyAssigned):
		return pkg.NewDomainErrorSimple("ALREADY_ASSIGNED", "Request already has a cleaner assigned", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotCompleted):
		return pkg.NewDomainErrorSimple("NOT_COMPLETED", "Request is not completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyRated):
		return pkg.NewDomainErrorSimple("ALREADY_RATED", "Request already rated", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
