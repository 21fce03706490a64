package utils

import (
	"testing"
	"time"

	"rentwise/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("landlord-1", RoleLandlord, time.Hour)
	require.NoError(t, err)

	sub, role, err := ExtractIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, "landlord-1", sub)
	assert.Equal(t, RoleLandlord, role)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("tenant-1", RoleTenant, -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractIdentity(token)
	assert.Error(t, err)
}
