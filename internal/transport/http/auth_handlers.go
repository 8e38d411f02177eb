package http

import (
	"log/slog"
	"net/http"

	"gallery_board/internal/lib/apperr"
	"gallery_board/internal/middleware"
	"gallery_board/internal/services/auth"
	"gallery_board/internal/transport/http/dto"
	"gallery_board/internal/transport/http/dto/request"
	"gallery_board/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// Register godoc
// @Summary Register a user
// @Description Creates an account. Every failing field is reported.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterInput true "Account data"
// @Success 201 {object} response.Register
// @Failure 422 {object} response.ValidationErrors
// @Failure 500 {object} response.Message
// @Router /register [post]
func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	log := r.log.With(
		slog.String("op", op),
	)

	p, err := readPayload(c)
	if err != nil {
		return r.fail(c, op, apperr.Validation(response.ErrInvalidRequestFormat.Message))
	}

	if errs := r.validator.Check(c.Request().Context(), p, registerRules); !errs.Empty() {
		log.Info("registration rejected", slog.Int("fields", len(errs)))
		return r.fail(c, op, apperr.ValidationFields(auth.MsgInvalidData, errs))
	}

	user, err := r.AuthService.Register(c.Request().Context(), dto.RegisterInput{
		UserName:             p.asString("user_name"),
		Email:                p.asString("email"),
		Password:             p.asString("password"),
		PasswordConfirmation: p.asString("password_confirmation"),
	})
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusCreated, response.Register{
		Message: auth.MsgUserCreated,
		User:    user,
	})
}

// Login godoc
// @Summary Log in
// @Description Exchanges email and password for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} models.Token
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	var req request.LoginRequest
	if err := c.Bind(&req); err != nil {
		return r.fail(c, op, apperr.Validation(response.ErrInvalidRequestFormat.Message))
	}

	token, err := r.AuthService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, token)
}

// Logout godoc
// @Summary Log out
// @Description Revokes the presented bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Message
// @Security BearerAuth
// @Router /logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrUnauthenticated)
	}

	if err := r.AuthService.Logout(c.Request().Context(), identity); err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, response.Message{Message: auth.MsgLoggedOut})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} response.Me
// @Failure 401 {object} response.Message
// @Failure 404 {object} response.Message
// @Security BearerAuth
// @Router /me [get]
func (r *Routers) Me(c echo.Context) error {
	const op = "http.routers.Me"

	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrUnauthenticated)
	}

	user, err := r.AuthService.Me(c.Request().Context(), identity)
	if err != nil {
		return r.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, response.Me{User: user})
}
