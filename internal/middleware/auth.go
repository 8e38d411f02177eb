package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"gallery_board/internal/domain/models"
	"gallery_board/internal/lib/apperr"
	"gallery_board/internal/lib/logger/sl"
	"gallery_board/internal/metrics"
	"gallery_board/internal/transport/http/dto/response"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// IdentityKey is the echo context key holding the verified models.Identity.
const IdentityKey = "identity"

type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (models.Identity, error)
}

// BearerAuth admits requests carrying a valid, unrevoked bearer token and
// stores the decoded identity under IdentityKey.
func BearerAuth(log *slog.Logger, verifier TokenVerifier) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  IdentityKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			return verifier.Verify(c.Request().Context(), raw)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var extractErr *echojwt.TokenExtractionError
			if errors.As(err, &extractErr) {
				metrics.AuthRejectionsTotal.WithLabelValues("missing").Inc()
				return c.JSON(http.StatusUnauthorized, response.ErrUnauthenticated)
			}

			var appErr *apperr.Error
			if errors.As(err, &appErr) && appErr.Kind == apperr.KindInternal {
				metrics.AuthRejectionsTotal.WithLabelValues("error").Inc()
				log.Error("token verification failed", sl.Err(err))
				return c.JSON(http.StatusInternalServerError, response.ErrInternal)
			}

			metrics.AuthRejectionsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusUnauthorized, response.ErrUnauthenticated)
		},
	})
}

// RequireRole rejects authenticated callers whose token lacks role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing").Inc()
				return c.JSON(http.StatusUnauthorized, response.ErrUnauthenticated)
			}

			if identity.Role != role {
				metrics.AuthRejectionsTotal.WithLabelValues("role").Inc()
				return c.JSON(http.StatusForbidden, response.ErrAdminRequired)
			}

			return next(c)
		}
	}
}

func IdentityFrom(c echo.Context) (models.Identity, bool) {
	identity, ok := c.Get(IdentityKey).(models.Identity)
	return identity, ok
}
