package jwt

import (
	"testing"
	"time"

	"gallery_board/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{
	ID:       42,
	UserName: "tester",
	Email:    "test@example.com",
	Role:     models.RoleUser,
}

func TestIssuer_IssueVerify(t *testing.T) {
	ttl := 90 * time.Minute
	issuer := New("test-secret", ttl)

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	assert.NotEmpty(t, token.Token)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, int64(ttl.Seconds()), token.ExpiresIn)

	parsed, err := jwt.ParseWithClaims(token.Token, &Claims{}, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(*Claims)
	assert.Equal(t, ttl, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	identity, err := issuer.Verify(token.Token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "tester", identity.UserName)
	assert.Equal(t, testUser.Email, identity.Email)
	assert.Equal(t, models.RoleUser, identity.Role)
	assert.Equal(t, claims.ID, identity.TokenID)
}

func TestIssuer_Verify_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).Issue(testUser)
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).Verify(token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Verify_Expired(t *testing.T) {
	issuer := New("test-secret", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	issuer.now = time.Now

	_, err = issuer.Verify(token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Verify_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = New("test-secret", time.Hour).Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Verify_Garbage(t *testing.T) {
	_, err := New("test-secret", time.Hour).Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Issue_RoleClaim(t *testing.T) {
	issuer := New("test-secret", time.Hour)

	tests := []struct {
		name string
		role string
		want string
	}{
		{name: "admin", role: models.RoleAdmin, want: models.RoleAdmin},
		{name: "user", role: models.RoleUser, want: models.RoleUser},
		{name: "blank", role: "", want: models.RoleUser},
		{name: "unknown", role: "moderator", want: models.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := testUser
			user.Role = tt.role

			token, err := issuer.Issue(user)
			require.NoError(t, err)

			identity, err := issuer.Verify(token.Token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, identity.Role)
		})
	}
}
