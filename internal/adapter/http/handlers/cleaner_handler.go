package handlers

import (
	"errors"
	"net/http"

	request "cleanmatch/internal/adapter/http/dto/request"
	response "cleanmatch/internal/adapter/http/dto/response"
	"cleanmatch/internal/adapter/http/middleware"
	"cleanmatch/internal/usecase"
	"cleanmatch/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCleanerPayload = pkg.NewDomainErrorSimple("INVALID_CLEANER_INPUT", "Invalid cleaner payload", http.StatusBadRequest)

type CleanerHandler struct {
	usecase usecase.ICleanerUseCase
}

func NewCleanerHandler(uc usecase.ICleanerUseCase) *CleanerHandler {
	return &CleanerHandler{usecase: uc}
}

func (h *CleanerHandler) Signup(c *gin.Context) {
	var payload request.CreateCleanerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCleanerPayload.HTTPStatus, errInvalidCleanerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Signup(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapCleanerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCleaner(created))
}

func (h *CleanerHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCleanerPayload.HTTPStatus, errInvalidCleanerPayload.ToHTTPError())
		return
	}

	cleaner, token, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapCleanerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CleanerLoginResponse{
		Token:   token,
		Cleaner: response.FromCleaner(cleaner),
	})
}

// Dashboard serves one randomized page of cleaners for the landing view.
func (h *CleanerHandler) Dashboard(c *gin.Context) {
	cleaners, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := mapCleanerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCleaners(cleaners))
}

// Filter lists cleaners matching every supplied criterion. Numeric
// criteria come in as "min-max" range strings, e.g. ?stars=4-5&price=15-25.
func (h *CleanerHandler) Filter(c *gin.Context) {
	cmd := usecase.FilterCommand{
		Stars:   c.Query("stars"),
		Price:   c.Query("price"),
		Age:     c.Query("age"),
		Gender:  c.Query("gender"),
		Service: c.Query("service"),
	}

	cleaners, err := h.usecase.Filter(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapCleanerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCleaners(cleaners))
}

func (h *CleanerHandler) GetByID(c *gin.Context) {
	cleaner, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCleanerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCleaner(cleaner))
}

func (h *CleanerHandler) Update(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.UpdateCleanerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCleanerPayload.HTTPStatus, errInvalidCleanerPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), actor.ID, payload.ToCommand())
	if err != nil {
		appErr := mapCleanerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCleaner(updated))
}

func (h *CleanerHandler) Delete(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), actor.ID); err != nil {
		appErr := mapCleanerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cleaner deleted successfully"})
}

func mapCleanerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCleanerID),
		errors.Is(err, usecase.ErrMissingCleanerFields),
		errors.Is(err, usecase.ErrInvalidAge),
		errors.Is(err, usecase.ErrInvalidHourlyPrice),
		errors.Is(err, usecase.ErrInvalidScheduleType),
		errors.Is(err, usecase.ErrInvalidFilterRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCleanerExists):
		return pkg.NewDomainErrorSimple("CLEANER_ALREADY_EXISTS", "Cleaner with this username or email already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCleanerNotFound):
		return pkg.NewDomainErrorSimple("CLEANER_NOT_FOUND", "Cleaner not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoCleanersMatch):
		return pkg.NewDomainErrorSimple("NO_CLEANERS_FOUND", "No cleaners found matching your filters", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this profile", http.StatusForbidden)
	case errors.Is(err, usecase.ErrCleanerHasActiveRequests):
		return pkg.NewDomainErrorSimple("CLEANER_HAS_ACTIVE_REQUESTS", "Cleaner still has requests in progress", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
