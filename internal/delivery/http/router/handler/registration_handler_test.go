package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"walletpass/internal/delivery/http/middleware"
	"walletpass/internal/delivery/http/validator"
	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	mockUsecase "walletpass/internal/mocks/usecase"
	"walletpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegistrationContext(t *testing.T, method, body string, subject *entity.Subject) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.SetParamNames("deviceLibraryIdentifier", "typeIdentifier", "serialNumber")
	serial := ""
	typeIdentifier := "pass.com.example.coupon"
	if subject != nil {
		serial = subject.SerialNumber()
		typeIdentifier = subject.TypeIdentifier
		c.Set(middleware.ContextKeySubject, subject)
	}
	c.SetParamValues("device-1", typeIdentifier, serial)

	return c, rec
}

func TestRegistrationHandler_Register(t *testing.T) {
	subject := &entity.Subject{
		ID:             uuid.New(),
		Kind:           entity.KindPass,
		TypeIdentifier: "pass.com.example.coupon",
	}

	t.Run("new registration responds 201", func(t *testing.T) {
		registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
		handler := &RegistrationHandler{registrationUC: registrationUC, logger: testLogger()}

		registrationUC.EXPECT().
			Register(mock.Anything, usecase.RegisterInput{
				LibraryIdentifier: "device-1",
				PushToken:         "tok-1",
				Kind:              entity.KindPass,
				TypeIdentifier:    subject.TypeIdentifier,
				SerialNumber:      subject.ID,
			}).
			Return(usecase.RegistrationCreated, nil)

		c, rec := newRegistrationContext(t, http.MethodPost, `{"pushToken":"tok-1"}`, subject)
		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("existing registration responds 200", func(t *testing.T) {
		registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
		handler := &RegistrationHandler{registrationUC: registrationUC, logger: testLogger()}

		registrationUC.EXPECT().
			Register(mock.Anything, mock.AnythingOfType("usecase.RegisterInput")).
			Return(usecase.RegistrationExists, nil)

		c, rec := newRegistrationContext(t, http.MethodPost, `{"pushToken":"tok-1"}`, subject)
		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing push token responds 400", func(t *testing.T) {
		registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
		handler := &RegistrationHandler{registrationUC: registrationUC, logger: testLogger()}

		c, rec := newRegistrationContext(t, http.MethodPost, `{}`, subject)
		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown subject responds 404", func(t *testing.T) {
		registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
		handler := &RegistrationHandler{registrationUC: registrationUC, logger: testLogger()}

		registrationUC.EXPECT().
			Register(mock.Anything, mock.AnythingOfType("usecase.RegisterInput")).
			Return(usecase.RegisterOutcome(0), repository.ErrSubjectNotFound)

		c, rec := newRegistrationContext(t, http.MethodPost, `{"pushToken":"tok-1"}`, subject)
		require.NoError(t, handler.Register(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRegistrationHandler_Unregister(t *testing.T) {
	subject := &entity.Subject{
		ID:             uuid.New(),
		Kind:           entity.KindOrder,
		TypeIdentifier: "order.com.example.store",
	}

	t.Run("existing registration responds 200", func(t *testing.T) {
		registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
		handler := &RegistrationHandler{registrationUC: registrationUC, logger: testLogger()}

		registrationUC.EXPECT().
			Unregister(mock.Anything, usecase.UnregisterInput{
				LibraryIdentifier: "device-1",
				Kind:              entity.KindOrder,
				TypeIdentifier:    subject.TypeIdentifier,
				SerialNumber:      subject.ID,
			}).
			Return(nil)

		c, rec := newRegistrationContext(t, http.MethodDelete, "", subject)
		require.NoError(t, handler.Unregister(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing registration responds 404", func(t *testing.T) {
		registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
		handler := &RegistrationHandler{registrationUC: registrationUC, logger: testLogger()}

		registrationUC.EXPECT().
			Unregister(mock.Anything, mock.AnythingOfType("usecase.UnregisterInput")).
			Return(repository.ErrRegistrationNotFound)

		c, rec := newRegistrationContext(t, http.MethodDelete, "", subject)
		require.NoError(t, handler.Unregister(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRegistrationHandler_ListSerials(t *testing.T) {
	t.Run("serials with watermark", func(t *testing.T) {
		registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
		handler := &RegistrationHandler{registrationUC: registrationUC, logger: testLogger()}

		lastUpdated := time.Unix(1700000000, 0)
		registrationUC.EXPECT().
			SerialsForDevice(mock.Anything, usecase.SerialsInput{
				LibraryIdentifier: "device-1",
				Kind:              entity.KindPass,
				TypeIdentifier:    "pass.com.example.coupon",
				ModifiedSince:     (*time.Time)(nil),
			}).
			Return(&repository.SerialsResult{
				SerialNumbers: []string{"serial-a", "serial-b"},
				LastUpdated:   lastUpdated,
			}, nil)

		c, rec := newRegistrationContext(t, http.MethodGet, "", nil)
		require.NoError(t, handler.ListSerials(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"serialNumbers":["serial-a","serial-b"],"lastUpdated":"1700000000"}`,
			rec.Body.String())
	})

	t.Run("passesUpdatedSince is forwarded as a timestamp", func(t *testing.T) {
		registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
		handler := &RegistrationHandler{registrationUC: registrationUC, logger: testLogger()}

		since := time.Unix(1690000000, 0)
		registrationUC.EXPECT().
			SerialsForDevice(mock.Anything, usecase.SerialsInput{
				LibraryIdentifier: "device-1",
				Kind:              entity.KindPass,
				TypeIdentifier:    "pass.com.example.coupon",
				ModifiedSince:     &since,
			}).
			Return(nil, usecase.ErrNoRegistrations)

		c, rec := newRegistrationContext(t, http.MethodGet, "", nil)
		c.QueryParams().Set("passesUpdatedSince", "1690000000")
		require.NoError(t, handler.ListSerials(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed passesUpdatedSince responds 400", func(t *testing.T) {
		registrationUC := mockUsecase.NewMockRegistrationUsecase(t)
		handler := &RegistrationHandler{registrationUC: registrationUC, logger: testLogger()}

		c, rec := newRegistrationContext(t, http.MethodGet, "", nil)
		c.QueryParams().Set("passesUpdatedSince", "not-a-timestamp")
		require.NoError(t, handler.ListSerials(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestKindForTypeIdentifier(t *testing.T) {
	assert.Equal(t, entity.KindOrder, kindForTypeIdentifier("order.com.example.store"))
	assert.Equal(t, entity.KindPass, kindForTypeIdentifier("pass.com.example.coupon"))
	assert.Equal(t, entity.KindPass, kindForTypeIdentifier("com.example.unprefixed"))
}
