package handler

import (
	"log/slog"
	"net/http"

	"walletpass/internal/delivery/http/response"
	"walletpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LogHandlerParams holds dependencies for LogHandler, injected by Fx.
type LogHandlerParams struct {
	fx.In

	ErrorLogUC usecase.ErrorLogUsecase
	Logger     *slog.Logger
}

// LogHandler serves the device error log sink.
type LogHandler struct {
	errorLogUC usecase.ErrorLogUsecase
	logger     *slog.Logger
}

// NewLogHandler is the constructor for LogHandler
func NewLogHandler(params LogHandlerParams) *LogHandler {
	return &LogHandler{
		errorLogUC: params.ErrorLogUC,
		logger:     params.Logger,
	}
}

// LogRequest represents the error log submission body
type LogRequest struct {
	Logs []string `json:"logs"`
}

// Submit persists the reported messages, one row per entry.
func (h *LogHandler) Submit(c echo.Context) error {
	var req LogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid log input")
	}

	if err := h.errorLogUC.LogMessages(c.Request().Context(), req.Logs); err != nil {
		if errors.Is(err, usecase.ErrEmptyLogBatch) {
			return response.BadRequest(c, "EMPTY_LOG_BATCH", "Log batch must not be empty")
		}
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusOK)
}
