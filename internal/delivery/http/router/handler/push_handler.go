package handler

import (
	"log/slog"
	"net/http"

	"walletpass/internal/delivery/http/response"
	"walletpass/internal/domain/repository"
	"walletpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// PushHandler serves the operator push-trigger routes.
type PushHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewPushHandler is the constructor for PushHandler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// PushTokensResponse lists the tokens a notification would target.
type PushTokensResponse struct {
	PushTokens []string `json:"pushTokens"`
}

// Notify triggers the push fan-out for a subject. A subject with zero
// registered devices still responds 204.
func (h *PushHandler) Notify(c echo.Context) error {
	typeIdentifier := c.Param("typeIdentifier")

	serial, err := uuid.Parse(c.Param("serialNumber"))
	if err != nil {
		return response.NotFound(c, "SUBJECT_NOT_FOUND", "Unknown serial number")
	}

	err = h.notificationUC.Notify(c.Request().Context(), kindForTypeIdentifier(typeIdentifier), typeIdentifier, serial)
	if err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) {
			return response.NotFound(c, "SUBJECT_NOT_FOUND", "Unknown serial number")
		}

		h.logger.Error("push fan-out failed",
			slog.String("serialNumber", serial.String()),
			slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Tokens lists the push tokens Notify would target, without sending.
func (h *PushHandler) Tokens(c echo.Context) error {
	typeIdentifier := c.Param("typeIdentifier")

	serial, err := uuid.Parse(c.Param("serialNumber"))
	if err != nil {
		return response.NotFound(c, "SUBJECT_NOT_FOUND", "Unknown serial number")
	}

	tokens, err := h.notificationUC.Tokens(c.Request().Context(), kindForTypeIdentifier(typeIdentifier), typeIdentifier, serial)
	if err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) {
			return response.NotFound(c, "SUBJECT_NOT_FOUND", "Unknown serial number")
		}
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, PushTokensResponse{PushTokens: tokens})
}
