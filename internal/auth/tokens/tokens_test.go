package tokens

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/AnyaAven/jobly/internal/types"
)

func TestCreateAndParse(t *testing.T) {
	issuer := NewIssuer("secret-dev", time.Hour)

	token, err := issuer.CreateToken("u1", true)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	user, err := issuer.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, types.UserContext{Username: "u1", IsAdmin: true}, user)
}

func TestClaimsShape(t *testing.T) {
	issuer := NewIssuer("secret-dev", time.Hour)
	fixed := time.Unix(1700000000, 0)
	issuer.now = func() time.Time { return fixed }

	token, err := issuer.CreateToken("u2", false)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	require.Equal(t, "u2", claims["username"])
	require.Equal(t, false, claims["isAdmin"])
	require.Equal(t, float64(1700000000), claims["iat"])
	require.Equal(t, float64(1700003600), claims["exp"])
}

func TestParseRejects(t *testing.T) {
	issuer := NewIssuer("secret-dev", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewIssuer("other", time.Hour).CreateToken("u1", false)
		require.NoError(t, err)
		_, err = issuer.ParseToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewIssuer("secret-dev", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := old.CreateToken("u1", false)
		require.NoError(t, err)
		_, err = issuer.ParseToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{Username: "u1"}).SignedString([]byte("secret-dev"))
		require.NoError(t, err)
		_, err = issuer.ParseToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.ParseToken("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing username", func(t *testing.T) {
		token, err := issuer.CreateToken("", false)
		require.NoError(t, err)
		_, err = issuer.ParseToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
