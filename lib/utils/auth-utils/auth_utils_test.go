package authutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run(`deterministic hash check`, func(t *testing.T) {
		first := HashPassword("salt-1", "secret-password")
		second := HashPassword("salt-1", "secret-password")
		require.Equal(t, first, second)
		require.Len(t, first, 64)
	})

	t.Run(`salt changes hash check`, func(t *testing.T) {
		first := HashPassword("salt-1", "secret-password")
		second := HashPassword("salt-2", "secret-password")
		require.NotEqual(t, first, second)
	})

	t.Run(`new salt is unique check`, func(t *testing.T) {
		require.NotEqual(t, NewSalt(), NewSalt())
	})
}
