package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"walletpass/internal/delivery/http/middleware"
	"walletpass/internal/delivery/http/response"
	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	Logger         *slog.Logger
}

// RegistrationHandler serves the device registration routes.
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUC: params.RegistrationUC,
		logger:         params.Logger,
	}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	PushToken string `json:"pushToken" validate:"required"`
}

// SerialNumbersResponse is the protocol-mandated list response body.
type SerialNumbersResponse struct {
	SerialNumbers []string `json:"serialNumbers"`
	LastUpdated   string   `json:"lastUpdated"`
}

// Register handles device registration for a subject. Re-registering an
// existing pair responds 200 instead of 201.
func (h *RegistrationHandler) Register(c echo.Context) error {
	subject, ok := middleware.SubjectFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_CREDENTIALS", "Subject not authenticated")
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	outcome, err := h.registrationUC.Register(c.Request().Context(), usecase.RegisterInput{
		LibraryIdentifier: c.Param("deviceLibraryIdentifier"),
		PushToken:         req.PushToken,
		Kind:              subject.Kind,
		TypeIdentifier:    subject.TypeIdentifier,
		SerialNumber:      subject.ID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) {
			return response.NotFound(c, "SUBJECT_NOT_FOUND", "Unknown serial number")
		}
		return response.HandleAppError(c, err)
	}

	if outcome == usecase.RegistrationCreated {
		return c.NoContent(http.StatusCreated)
	}

	return c.NoContent(http.StatusOK)
}

// Unregister removes the registration binding the device to the subject.
func (h *RegistrationHandler) Unregister(c echo.Context) error {
	subject, ok := middleware.SubjectFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_CREDENTIALS", "Subject not authenticated")
	}

	err := h.registrationUC.Unregister(c.Request().Context(), usecase.UnregisterInput{
		LibraryIdentifier: c.Param("deviceLibraryIdentifier"),
		Kind:              subject.Kind,
		TypeIdentifier:    subject.TypeIdentifier,
		SerialNumber:      subject.ID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) || errors.Is(err, repository.ErrRegistrationNotFound) {
			return response.NotFound(c, "REGISTRATION_NOT_FOUND", "Registration does not exist")
		}
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// ListSerials lists the serial numbers registered to a device for one type,
// optionally restricted to subjects updated after passesUpdatedSince. An
// empty result responds 204 with no body.
func (h *RegistrationHandler) ListSerials(c echo.Context) error {
	typeIdentifier := c.Param("typeIdentifier")

	var modifiedSince *time.Time
	if raw := c.QueryParam("passesUpdatedSince"); raw != "" {
		seconds, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "passesUpdatedSince must be a unix timestamp")
		}
		t := time.Unix(seconds, 0)
		modifiedSince = &t
	}

	result, err := h.registrationUC.SerialsForDevice(c.Request().Context(), usecase.SerialsInput{
		LibraryIdentifier: c.Param("deviceLibraryIdentifier"),
		Kind:              kindForTypeIdentifier(typeIdentifier),
		TypeIdentifier:    typeIdentifier,
		ModifiedSince:     modifiedSince,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNoRegistrations) {
			return c.NoContent(http.StatusNoContent)
		}
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, SerialNumbersResponse{
		SerialNumbers: result.SerialNumbers,
		LastUpdated:   strconv.FormatInt(result.LastUpdated.Unix(), 10),
	})
}

// kindForTypeIdentifier maps a reverse-DNS type identifier to its subject
// kind. Order identifiers carry the "order." prefix; everything else is a
// pass type.
func kindForTypeIdentifier(typeIdentifier string) entity.SubjectKind {
	if strings.HasPrefix(typeIdentifier, "order.") {
		return entity.KindOrder
	}

	return entity.KindPass
}
