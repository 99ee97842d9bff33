package cairn_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn"
)

func TestEnvironmentValid(t *testing.T) {
	for _, tc := range []struct {
		name string
		env  cairn.Environment
		err  error
	}{
		{"Development", cairn.Development, nil},
		{"Production", cairn.Production, nil},
		{"Staging", cairn.Staging, nil},
		{"Testing", cairn.Testing, nil},
		{"Zero-Value", cairn.Environment(""), cairn.ErrNotValid},
		{"Lowercase", cairn.Environment("testing"), cairn.ErrNotValid},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.env.Valid(), tc.err)
		})
	}
}

func TestEnvVarOr(t *testing.T) {
	key := "CAIRN_TEST_ENV_VAR"

	t.Run("Bool", func(t *testing.T) {
		t.Setenv(key, "TRUE")
		require.True(t, cairn.EnvVarOrBool(key, false))

		t.Setenv(key, "nope")
		require.True(t, cairn.EnvVarOrBool(key, true))
	})

	t.Run("Duration", func(t *testing.T) {
		t.Setenv(key, "3s")
		require.Equal(t, 3*time.Second, cairn.EnvVarOrDuration(key, time.Minute))

		t.Setenv(key, "")
		require.Equal(t, time.Minute, cairn.EnvVarOrDuration(key, time.Minute))
	})

	t.Run("Env", func(t *testing.T) {
		t.Setenv(key, "staging")
		require.Equal(t, cairn.Staging, cairn.EnvVarOrEnv(key, cairn.Development))

		t.Setenv(key, "moon")
		require.Equal(t, cairn.Development, cairn.EnvVarOrEnv(key, cairn.Development))
	})

	t.Run("Int", func(t *testing.T) {
		t.Setenv(key, "12")
		require.Equal(t, 12, cairn.EnvVarOrInt(key, 1))

		t.Setenv(key, "twelve")
		require.Equal(t, 1, cairn.EnvVarOrInt(key, 1))
	})

	t.Run("String", func(t *testing.T) {
		t.Setenv(key, "")
		require.Equal(t, "def", cairn.EnvVarOrString(key, "def"))

		t.Setenv(key, "val")
		require.Equal(t, "val", cairn.EnvVarOrString(key, "val"))
	})
}
