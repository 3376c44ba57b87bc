package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPort(t *testing.T) {
	t.Setenv("CLINIC_TEST_PORT", "8085")
	port, err := Port("CLINIC_TEST_PORT", "8080")
	require.NoError(t, err)
	assert.Equal(t, "8085", port)

	t.Setenv("CLINIC_TEST_PORT", "70000")
	_, err = Port("CLINIC_TEST_PORT", "8080")
	assert.Error(t, err)
}

func TestRequiredString(t *testing.T) {
	t.Setenv("CLINIC_TEST_REQUIRED", "  ")
	_, err := RequiredString("CLINIC_TEST_REQUIRED")
	assert.EqualError(t, err, "CLINIC_TEST_REQUIRED is required")

	t.Setenv("CLINIC_TEST_REQUIRED", "postgres://x")
	v, err := RequiredString("CLINIC_TEST_REQUIRED")
	require.NoError(t, err)
	assert.Equal(t, "postgres://x", v)
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("CLINIC_TEST_INT", "abc")
	assert.Equal(t, 7, Int("CLINIC_TEST_INT", 7))
	t.Setenv("CLINIC_TEST_INT", "12")
	assert.Equal(t, 12, Int("CLINIC_TEST_INT", 7))

	t.Setenv("CLINIC_TEST_BOOL", "off")
	assert.False(t, Bool("CLINIC_TEST_BOOL", true))
	t.Setenv("CLINIC_TEST_BOOL", "maybe")
	assert.True(t, Bool("CLINIC_TEST_BOOL", true))

	t.Setenv("CLINIC_TEST_DURATION", "15")
	assert.Equal(t, 15*time.Second, Duration("CLINIC_TEST_DURATION", time.Second))
	t.Setenv("CLINIC_TEST_DURATION", "250ms")
	assert.Equal(t, 250*time.Millisecond, Duration("CLINIC_TEST_DURATION", time.Second))
	t.Setenv("CLINIC_TEST_DURATION", "-3")
	assert.Equal(t, time.Second, Duration("CLINIC_TEST_DURATION", time.Second))

	t.Setenv("CLINIC_TEST_LIST", " a, ,b ,")
	assert.Equal(t, []string{"a", "b"}, List("CLINIC_TEST_LIST", nil))
	t.Setenv("CLINIC_TEST_LIST", " , ")
	assert.Equal(t, []string{"x"}, List("CLINIC_TEST_LIST", []string{"x"}))
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CLINIC_TEST_DOTENV_A=file\nCLINIC_TEST_DOTENV_B=file\n"), 0o600))

	t.Setenv("CLINIC_TEST_DOTENV_A", "env")
	t.Setenv("CLINIC_TEST_DOTENV_B", "")
	require.NoError(t, os.Unsetenv("CLINIC_TEST_DOTENV_B"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "env", os.Getenv("CLINIC_TEST_DOTENV_A"))
	assert.Equal(t, "file", os.Getenv("CLINIC_TEST_DOTENV_B"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
