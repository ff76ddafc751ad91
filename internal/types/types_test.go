package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserContext_ZeroValueIsAnonymous(t *testing.T) {
	var u UserContext
	require.Empty(t, u.Username)
	require.False(t, u.IsAdmin)
}
