package hello_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hello"
)

func TestEnvironmentValid(t *testing.T) {
	for _, env := range []hello.Environment{hello.Development, hello.Production, hello.Staging, hello.Testing} {
		require.Nil(t, env.Valid())
	}

	require.ErrorIs(t, hello.Environment("LOCAL").Valid(), hello.ErrNotValid)
}

func TestEnvVarOrEnv(t *testing.T) {
	key := "HELLO_TEST_ENV"

	// Arrange + Act + Assert
	require.Equal(t, hello.Development, hello.EnvVarOrEnv(key, hello.Development))

	// Arrange
	t.Setenv(key, "production")

	// Act + Assert
	require.Equal(t, hello.Production, hello.EnvVarOrEnv(key, hello.Development))

	// Arrange
	t.Setenv(key, "moon")

	// Act + Assert
	require.Equal(t, hello.Testing, hello.EnvVarOrEnv(key, hello.Testing))
}

func TestEnvVarOr(t *testing.T) {
	key := "HELLO_TEST_VAR"

	require.True(t, hello.EnvVarOrBool(key, true))
	require.Equal(t, time.Second, hello.EnvVarOrDuration(key, time.Second))
	require.Equal(t, 7, hello.EnvVarOrInt(key, 7))
	require.Equal(t, "def", hello.EnvVarOrString(key, "def"))
	require.Equal(t, "http://localhost:3000/", hello.EnvVarOrURL(key, "http://localhost:3000").String())

	t.Setenv(key, "FALSE")
	require.False(t, hello.EnvVarOrBool(key, true))
	require.Equal(t, 7, hello.EnvVarOrInt(key, 7))

	t.Setenv(key, "42")
	require.Equal(t, 42, hello.EnvVarOrInt(key, 7))
	require.Equal(t, "42", hello.EnvVarOrString(key, "def"))

	t.Setenv(key, "90s")
	require.Equal(t, 90*time.Second, hello.EnvVarOrDuration(key, time.Second))

	t.Setenv(key, "https://example.com/base")
	require.Equal(t, "https://example.com/base", hello.EnvVarOrURL(key, "http://localhost:3000").String())
}
