package environment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvironment_GetString(t *testing.T) {
	c := require.New(t)

	t.Setenv("TEST_LOG_LEVEL", "debug")
	c.Equal("debug", GetString("TEST_LOG_LEVEL", "info"))

	t.Setenv("TEST_LOG_LEVEL", "  ")
	c.Equal("info", GetString("TEST_LOG_LEVEL", "info"))

	c.Equal("info", GetString("TEST_UNSET_VAR", "info"))
}

func TestEnvironment_GetInt64(t *testing.T) {
	c := require.New(t)

	t.Setenv("TEST_TIMEOUT", "30")
	c.Equal(int64(30), GetInt64("TEST_TIMEOUT", 10))

	t.Setenv("TEST_TIMEOUT", "thirty")
	c.Equal(int64(10), GetInt64("TEST_TIMEOUT", 10))

	c.Equal(int64(10), GetInt64("TEST_UNSET_VAR", 10))
}

func TestEnvironment_GetBool(t *testing.T) {
	c := require.New(t)

	t.Setenv("TEST_LOG_INVOCATIONS", "false")
	c.False(GetBool("TEST_LOG_INVOCATIONS", true))

	t.Setenv("TEST_LOG_INVOCATIONS", "TRUE")
	c.True(GetBool("TEST_LOG_INVOCATIONS", false))

	t.Setenv("TEST_LOG_INVOCATIONS", "maybe")
	c.True(GetBool("TEST_LOG_INVOCATIONS", true))

	c.False(GetBool("TEST_UNSET_VAR", false))
}
