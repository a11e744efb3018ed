package handler

import (
	"log/slog"
	"net/http"
	"time"

	"walletpass/internal/delivery/http/middleware"
	"walletpass/internal/delivery/http/response"
	"walletpass/internal/domain/repository"
	"walletpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BundleHandlerParams holds dependencies for BundleHandler, injected by Fx.
type BundleHandlerParams struct {
	fx.In

	BundleUC usecase.BundleUsecase
	Logger   *slog.Logger
}

// BundleHandler serves signed pass and order archives.
type BundleHandler struct {
	bundleUC usecase.BundleUsecase
	logger   *slog.Logger
}

// NewBundleHandler is the constructor for BundleHandler
func NewBundleHandler(params BundleHandlerParams) *BundleHandler {
	return &BundleHandler{
		bundleUC: params.BundleUC,
		logger:   params.Logger,
	}
}

// Download builds and returns the subject's signed archive. A fresh
// If-Modified-Since responds 304 without touching the packaging pipeline.
func (h *BundleHandler) Download(c echo.Context) error {
	subject, ok := middleware.SubjectFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_CREDENTIALS", "Subject not authenticated")
	}

	var ifModifiedSince *time.Time
	if raw := c.Request().Header.Get("If-Modified-Since"); raw != "" {
		// An unparseable header is ignored, not rejected.
		if t, err := http.ParseTime(raw); err == nil {
			ifModifiedSince = &t
		}
	}

	bundle, err := h.bundleUC.SubjectBundle(c.Request().Context(), subject.Kind, subject.TypeIdentifier, subject.ID, ifModifiedSince)
	if err != nil {
		if errors.Is(err, usecase.ErrNotModified) {
			return c.NoContent(http.StatusNotModified)
		}
		if errors.Is(err, repository.ErrSubjectNotFound) {
			return response.NotFound(c, "SUBJECT_NOT_FOUND", "Unknown serial number")
		}

		h.logger.Error("failed to build bundle",
			slog.String("serialNumber", subject.SerialNumber()),
			slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Last-Modified", bundle.LastModified.UTC().Format(http.TimeFormat))
	c.Response().Header().Set("Content-Transfer-Encoding", "binary")

	return c.Blob(http.StatusOK, bundle.MIMEType, bundle.Archive)
}
