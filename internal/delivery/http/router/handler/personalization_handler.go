package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"walletpass/internal/delivery/http/middleware"
	"walletpass/internal/delivery/http/response"
	"walletpass/internal/domain/repository"
	"walletpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PersonalizationHandlerParams holds dependencies for PersonalizationHandler, injected by Fx.
type PersonalizationHandlerParams struct {
	fx.In

	PersonalizationUC usecase.PersonalizationUsecase
	Logger            *slog.Logger
}

// PersonalizationHandler serves the pass personalization enrollment route.
type PersonalizationHandler struct {
	personalizationUC usecase.PersonalizationUsecase
	logger            *slog.Logger
}

// NewPersonalizationHandler is the constructor for PersonalizationHandler
func NewPersonalizationHandler(params PersonalizationHandlerParams) *PersonalizationHandler {
	return &PersonalizationHandler{
		personalizationUC: params.PersonalizationUC,
		logger:            params.Logger,
	}
}

// PersonalizeRequest represents the enrollment submission body
type PersonalizeRequest struct {
	PersonalizationToken        string                      `json:"personalizationToken" validate:"required"`
	RequiredPersonalizationInfo RequiredPersonalizationInfo `json:"requiredPersonalizationInfo"`
}

// RequiredPersonalizationInfo carries the user-identifying enrollment fields.
type RequiredPersonalizationInfo struct {
	FullName     string `json:"fullName,omitempty"`
	GivenName    string `json:"givenName,omitempty"`
	FamilyName   string `json:"familyName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
}

// Personalize records the enrollment and returns a detached signature over
// the personalization token as an octet stream.
func (h *PersonalizationHandler) Personalize(c echo.Context) error {
	subject, ok := middleware.SubjectFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_CREDENTIALS", "Subject not authenticated")
	}

	var req PersonalizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid personalization input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	rawInfo, err := json.Marshal(req.RequiredPersonalizationInfo)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid personalization info")
	}

	signature, err := h.personalizationUC.Personalize(c.Request().Context(), usecase.PersonalizationInput{
		TypeIdentifier:       subject.TypeIdentifier,
		SerialNumber:         subject.ID,
		PersonalizationToken: req.PersonalizationToken,
		FullName:             req.RequiredPersonalizationInfo.FullName,
		GivenName:            req.RequiredPersonalizationInfo.GivenName,
		FamilyName:           req.RequiredPersonalizationInfo.FamilyName,
		EmailAddress:         req.RequiredPersonalizationInfo.EmailAddress,
		PhoneNumber:          req.RequiredPersonalizationInfo.PhoneNumber,
		PostalCode:           req.RequiredPersonalizationInfo.PostalCode,
		RequiredFields:       string(rawInfo),
	})
	if err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) {
			return response.NotFound(c, "SUBJECT_NOT_FOUND", "Unknown serial number")
		}
		if errors.Is(err, repository.ErrPersonalizationExists) {
			return response.Error(c, http.StatusConflict, "ALREADY_PERSONALIZED", "Pass is already personalized", "")
		}

		h.logger.Error("personalization failed",
			slog.String("serialNumber", subject.SerialNumber()),
			slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "application/octet-stream", signature)
}
