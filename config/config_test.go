package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setGatewayEnv(t *testing.T) {
	t.Setenv("GATEWAY_BASE_URL", "https://sandbox.gateway.co/v1")
	t.Setenv("GATEWAY_PUBLIC_KEY", "pub_test")
	t.Setenv("GATEWAY_PRIVATE_KEY", "prv_test")
	t.Setenv("GATEWAY_INTEGRITY_SECRET", "integrity_test")
}

func TestLoadConfigDefaults(t *testing.T) {
	setGatewayEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:9000", cfg.BackendBaseURL)
	assert.Equal(t, "Cliente DEMO", cfg.DemoCustomerName)
	assert.Equal(t, "demo@example.com", cfg.DemoCustomerEmail)
}

func TestLoadConfigRequiresGatewayKeys(t *testing.T) {
	t.Setenv("GATEWAY_BASE_URL", "https://sandbox.gateway.co/v1")
	t.Setenv("GATEWAY_PUBLIC_KEY", "")
	t.Setenv("GATEWAY_PRIVATE_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GATEWAY_PUBLIC_KEY")
}

func TestLoadConfigOverrides(t *testing.T) {
	setGatewayEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND_BASE_URL", "https://backend.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://backend.example.com", cfg.BackendBaseURL)
}
