package middleware

import (
	"crypto/subtle"
	"slices"
	"strings"

	"walletpass/config"
	"walletpass/internal/delivery/http/response"
	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Authorization header schemes mandated by the wallet protocol.
const (
	SchemePass     = "ApplePass"
	SchemeOrder    = "AppleOrder"
	SchemeOperator = "AppleWallet"
)

// ContextKeySubject is the echo context key under which the authenticated
// subject is stored for downstream handlers.
const ContextKeySubject = "subject"

// AuthMiddleware authenticates protocol requests: per-subject bearer tokens
// for device-facing routes and the shared operator secret for operator routes.
type AuthMiddleware struct {
	subjectUC usecase.SubjectUsecase
	cfg       *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(subjectUC usecase.SubjectUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{subjectUC: subjectUC, cfg: cfg}
}

// AuthenticateSubject validates the per-subject authentication token carried
// in the Authorization header. The scheme selects the subject kind; when
// kinds is non-empty the derived kind must be among them. On success the
// resolved subject is stored on the context under ContextKeySubject.
func (m *AuthMiddleware) AuthenticateSubject(kinds ...entity.SubjectKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scheme, token, ok := splitAuthorization(c)
			if !ok {
				return response.Unauthorized(c, "MISSING_CREDENTIALS", "Authorization header is missing or malformed")
			}

			var kind entity.SubjectKind
			switch scheme {
			case SchemePass:
				kind = entity.KindPass
			case SchemeOrder:
				kind = entity.KindOrder
			default:
				return response.Unauthorized(c, "INVALID_SCHEME", "Unsupported authorization scheme")
			}

			if len(kinds) > 0 && !slices.Contains(kinds, kind) {
				return response.Unauthorized(c, "INVALID_SCHEME", "Authorization scheme does not match the requested resource")
			}

			serial, err := uuid.Parse(c.Param("serialNumber"))
			if err != nil {
				return response.NotFound(c, "SUBJECT_NOT_FOUND", "Unknown serial number")
			}

			subject, err := m.subjectUC.Authenticate(c.Request().Context(), kind, c.Param("typeIdentifier"), serial, token)
			if err != nil {
				if errors.Is(err, repository.ErrSubjectNotFound) {
					return response.NotFound(c, "SUBJECT_NOT_FOUND", "Unknown serial number")
				}
				if errors.Is(err, usecase.ErrInvalidAuthToken) {
					return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid authentication token")
				}
				return response.HandleAppError(c, err)
			}

			c.Set(ContextKeySubject, subject)

			return next(c)
		}
	}
}

// AuthenticateOperator validates the shared operator secret.
func (m *AuthMiddleware) AuthenticateOperator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		scheme, secret, ok := splitAuthorization(c)
		if !ok || scheme != SchemeOperator {
			return response.Unauthorized(c, "MISSING_CREDENTIALS", "Authorization header is missing or malformed")
		}

		if subtle.ConstantTimeCompare([]byte(secret), []byte(m.cfg.Wallet.OperatorSecret)) != 1 {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid operator secret")
		}

		return next(c)
	}
}

// SubjectFromContext retrieves the subject stored by AuthenticateSubject.
func SubjectFromContext(c echo.Context) (*entity.Subject, bool) {
	subject, ok := c.Get(ContextKeySubject).(*entity.Subject)
	return subject, ok
}

func splitAuthorization(c echo.Context) (scheme, credential string, ok bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", "", false
	}

	scheme, credential, found := strings.Cut(header, " ")
	if !found || scheme == "" || credential == "" {
		return "", "", false
	}

	return scheme, strings.TrimSpace(credential), true
}
