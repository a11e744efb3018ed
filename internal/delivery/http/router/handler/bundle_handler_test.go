package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"walletpass/internal/delivery/http/middleware"
	"walletpass/internal/domain/entity"
	mockUsecase "walletpass/internal/mocks/usecase"
	"walletpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDownloadContext(t *testing.T, subject *entity.Subject, ifModifiedSince string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if ifModifiedSince != "" {
		req.Header.Set("If-Modified-Since", ifModifiedSince)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.SetParamNames("typeIdentifier", "serialNumber")
	c.SetParamValues(subject.TypeIdentifier, subject.SerialNumber())
	c.Set(middleware.ContextKeySubject, subject)

	return c, rec
}

func TestBundleHandler_Download(t *testing.T) {
	subject := &entity.Subject{
		ID:             uuid.New(),
		Kind:           entity.KindPass,
		TypeIdentifier: "pass.com.example.coupon",
	}

	t.Run("serves the archive with protocol headers", func(t *testing.T) {
		bundleUC := mockUsecase.NewMockBundleUsecase(t)
		handler := &BundleHandler{bundleUC: bundleUC, logger: testLogger()}

		lastModified := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		bundleUC.EXPECT().
			SubjectBundle(mock.Anything, entity.KindPass, subject.TypeIdentifier, subject.ID, (*time.Time)(nil)).
			Return(&usecase.SubjectBundle{
				Archive:      []byte("zip-bytes"),
				MIMEType:     "application/vnd.apple.pkpass",
				LastModified: lastModified,
			}, nil)

		c, rec := newDownloadContext(t, subject, "")
		require.NoError(t, handler.Download(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/vnd.apple.pkpass", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "Sat, 14 Mar 2026 09:26:53 GMT", rec.Header().Get("Last-Modified"))
		assert.Equal(t, "binary", rec.Header().Get("Content-Transfer-Encoding"))
		assert.Equal(t, []byte("zip-bytes"), rec.Body.Bytes())
	})

	t.Run("fresh If-Modified-Since responds 304 without a body", func(t *testing.T) {
		bundleUC := mockUsecase.NewMockBundleUsecase(t)
		handler := &BundleHandler{bundleUC: bundleUC, logger: testLogger()}

		since := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		bundleUC.EXPECT().
			SubjectBundle(mock.Anything, entity.KindPass, subject.TypeIdentifier, subject.ID, &since).
			Return(nil, usecase.ErrNotModified)

		c, rec := newDownloadContext(t, subject, since.Format(http.TimeFormat))
		require.NoError(t, handler.Download(c))

		assert.Equal(t, http.StatusNotModified, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	})

	t.Run("unparseable If-Modified-Since is ignored", func(t *testing.T) {
		bundleUC := mockUsecase.NewMockBundleUsecase(t)
		handler := &BundleHandler{bundleUC: bundleUC, logger: testLogger()}

		bundleUC.EXPECT().
			SubjectBundle(mock.Anything, entity.KindPass, subject.TypeIdentifier, subject.ID, (*time.Time)(nil)).
			Return(&usecase.SubjectBundle{
				Archive:      []byte("zip-bytes"),
				MIMEType:     "application/vnd.apple.pkpass",
				LastModified: time.Now(),
			}, nil)

		c, rec := newDownloadContext(t, subject, "not-a-date")
		require.NoError(t, handler.Download(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
