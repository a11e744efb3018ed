package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

func newPersonalizeContext(t *testing.T, body string, subject *entity.Subject) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.SetParamNames("typeIdentifier", "serialNumber")
	c.SetParamValues(subject.TypeIdentifier, subject.SerialNumber())
	c.Set(middleware.ContextKeySubject, subject)

	return c, rec
}

func TestPersonalizationHandler_Personalize(t *testing.T) {
	subject := &entity.Subject{
		ID:             uuid.New(),
		Kind:           entity.KindPass,
		TypeIdentifier: "pass.com.example.coupon",
	}

	t.Run("returns the signature as an octet stream", func(t *testing.T) {
		personalizationUC := mockUsecase.NewMockPersonalizationUsecase(t)
		handler := &PersonalizationHandler{personalizationUC: personalizationUC, logger: testLogger()}

		personalizationUC.EXPECT().
			Personalize(mock.Anything, usecase.PersonalizationInput{
				TypeIdentifier:       subject.TypeIdentifier,
				SerialNumber:         subject.ID,
				PersonalizationToken: "enroll-token",
				FullName:             "Jamie Doe",
				EmailAddress:         "jamie@example.com",
				RequiredFields:       `{"fullName":"Jamie Doe","emailAddress":"jamie@example.com"}`,
			}).
			Return([]byte("cms-signature"), nil)

		body := `{"personalizationToken":"enroll-token","requiredPersonalizationInfo":{"fullName":"Jamie Doe","emailAddress":"jamie@example.com"}}`
		c, rec := newPersonalizeContext(t, body, subject)
		require.NoError(t, handler.Personalize(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/octet-stream", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, []byte("cms-signature"), rec.Body.Bytes())
	})

	t.Run("missing token responds 400", func(t *testing.T) {
		personalizationUC := mockUsecase.NewMockPersonalizationUsecase(t)
		handler := &PersonalizationHandler{personalizationUC: personalizationUC, logger: testLogger()}

		c, rec := newPersonalizeContext(t, `{"requiredPersonalizationInfo":{}}`, subject)
		require.NoError(t, handler.Personalize(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("already personalized responds 409", func(t *testing.T) {
		personalizationUC := mockUsecase.NewMockPersonalizationUsecase(t)
		handler := &PersonalizationHandler{personalizationUC: personalizationUC, logger: testLogger()}

		personalizationUC.EXPECT().
			Personalize(mock.Anything, mock.AnythingOfType("usecase.PersonalizationInput")).
			Return(nil, repository.ErrPersonalizationExists)

		body := `{"personalizationToken":"enroll-token"}`
		c, rec := newPersonalizeContext(t, body, subject)
		require.NoError(t, handler.Personalize(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
