package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gallery_board/internal/domain/models"
	"gallery_board/internal/lib/apperr"
	"gallery_board/internal/lib/logger/sl"
	"gallery_board/internal/storage"
	"gallery_board/internal/transport/http/dto"

	"golang.org/x/crypto/bcrypt"
)

const (
	MsgUserCreated     = "User created."
	MsgLoggedOut       = "Successfully logged out."
	MsgNoAccount       = "Account does not exist."
	MsgPasswordInvalid = "Password does not match."
	MsgTokenFailed     = "Could not create token"
	MsgInvalidToken    = "Invalid token."
	MsgUserNotFound    = "User not found."
	MsgInvalidData     = "The given data was invalid."
	MsgEmailTaken      = "The email has already been taken."
)

type Auth struct {
	log    *slog.Logger
	users  UserStore
	tokens TokenStore
	issuer TokenIssuer
}

type UserStore interface {
	SaveUser(ctx context.Context, user models.User) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, userID int64) (models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type TokenIssuer interface {
	Issue(user models.User) (models.Token, error)
	Verify(raw string) (models.Identity, error)
}

func New(log *slog.Logger, users UserStore, tokens TokenStore, issuer TokenIssuer) *Auth {
	return &Auth{
		log:    log,
		users:  users,
		tokens: tokens,
		issuer: issuer,
	}
}

func (a *Auth) Register(ctx context.Context, in dto.RegisterInput) (models.User, error) {
	const op = "auth.Register"

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", in.Email),
	)

	log.Info("registering user")

	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return models.User{}, apperr.Internal("failed to register user", fmt.Errorf("%s: %w", op, err))
	}

	user, err := a.users.SaveUser(ctx, in.ToDomain(passHash))
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exists", sl.Err(err))

			return models.User{}, apperr.ValidationFields(MsgInvalidData, map[string][]string{
				"email": {MsgEmailTaken},
			})
		}

		log.Error("failed to save user", sl.Err(err))

		return models.User{}, apperr.Internal("failed to register user", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))

	return user, nil
}

func (a *Auth) Login(ctx context.Context, email, password string) (models.Token, error) {
	const op = "auth.Login"

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to login user")

	user, err := a.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("user not found", sl.Err(err))

			return models.Token{}, apperr.Unauthenticated(MsgNoAccount, fmt.Errorf("%s: %w", op, err))
		}

		log.Error("failed to get user", sl.Err(err))

		return models.Token{}, apperr.Internal("failed to login", fmt.Errorf("%s: %w", op, err))
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return models.Token{}, apperr.Unauthenticated(MsgPasswordInvalid, fmt.Errorf("%s: %w", op, err))
	}

	token, err := a.issuer.Issue(user)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))

		return models.Token{}, apperr.InternalPublic(MsgTokenFailed, fmt.Errorf("%s: %w", op, err))
	}

	log.Info("user logged in successfully", slog.Int64("user_id", user.ID))

	return token, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (a *Auth) Logout(ctx context.Context, identity models.Identity) error {
	const op = "auth.Logout"

	log := a.log.With(
		slog.String("op", op),
		slog.Int64("user_id", identity.UserID),
	)

	if err := a.tokens.Revoke(ctx, identity.TokenID, time.Until(identity.ExpiresAt)); err != nil {
		log.Error("failed to revoke token", sl.Err(err))

		return apperr.Internal("failed to logout", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("user logged out")

	return nil
}

func (a *Auth) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	const op = "auth.Me"

	user, err := a.users.UserByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, apperr.NotFound(MsgUserNotFound, fmt.Errorf("%s: %w", op, err))
		}

		a.log.Error("failed to get user", slog.String("op", op), sl.Err(err))

		return models.User{}, apperr.Internal("failed to get user", fmt.Errorf("%s: %w", op, err))
	}

	return user, nil
}

// Verify decodes a bearer token and rejects it if it was logged out.
func (a *Auth) Verify(ctx context.Context, raw string) (models.Identity, error) {
	const op = "auth.Verify"

	identity, err := a.issuer.Verify(raw)
	if err != nil {
		return models.Identity{}, apperr.Unauthenticated(MsgInvalidToken, fmt.Errorf("%s: %w", op, err))
	}

	revoked, err := a.tokens.IsRevoked(ctx, identity.TokenID)
	if err != nil {
		a.log.Error("failed to check token denylist", slog.String("op", op), sl.Err(err))

		return models.Identity{}, apperr.Internal("failed to verify token", fmt.Errorf("%s: %w", op, err))
	}

	if revoked {
		return models.Identity{}, apperr.Unauthenticated(MsgInvalidToken, fmt.Errorf("%s: token revoked", op))
	}

	return identity, nil
}

// EmailTaken backs the unique_email validation rule.
func (a *Auth) EmailTaken(ctx context.Context, email string) (bool, error) {
	const op = "auth.EmailTaken"

	taken, err := a.users.EmailExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return taken, nil
}
