package cairn_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "cairn context key: SessionKey", cairn.SessionKey.String())
}

func TestKeyDistinct(t *testing.T) {
	// Arrange
	ctx := context.WithValue(context.Background(), cairn.RequestIDKey, "abc")

	// Act
	_, ok := ctx.Value("RequestIDKey").(string)

	// Assert
	require.False(t, ok)
	require.Equal(t, "abc", ctx.Value(cairn.RequestIDKey))
}
