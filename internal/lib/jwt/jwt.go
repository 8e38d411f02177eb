// Package jwt issues and verifies the HS256 bearer tokens handed out on login.
package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gallery_board/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

const tokenType = "bearer"

type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (i *Issuer) Issue(user models.User) (models.Token, error) {
	const op = "jwt.Issuer.Issue"

	now := i.now()
	exp := now.Add(i.ttl)

	// only admins carry a role other than user
	role := models.RoleUser
	if user.IsAdmin() {
		role = models.RoleAdmin
	}

	claims := Claims{
		Name:  user.UserName,
		Email: user.Email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.Token{
		Token:     signed,
		TokenType: tokenType,
		ExpiresIn: int64(i.ttl.Seconds()),
		ExpiresAt: exp,
	}, nil
}

func (i *Issuer) Verify(raw string) (models.Identity, error) {
	const op = "jwt.Issuer.Verify"

	claims := &Claims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w: bad subject", op, ErrInvalidToken)
	}

	return models.Identity{
		UserID:    userID,
		UserName:  claims.Name,
		Email:     claims.Email,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
