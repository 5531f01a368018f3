package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration_Defaults(t *testing.T) {
	require.NotNil(t, &C, "Configuration should not be nil")

	assert.NotEmpty(t, C.Database.Mongo.Name, "Mongo database name should default")
	assert.NotEmpty(t, C.Database.Mongo.Host, "Mongo host should default")
	assert.NotEmpty(t, C.Database.Mongo.Port, "Mongo port should default")
	assert.NotZero(t, C.App.Port, "App port should default")
	assert.NotZero(t, C.App.AccessTokenTTL, "Access token TTL should default")
	assert.NotZero(t, C.App.RefreshTokenTTL, "Refresh token TTL should default")
	assert.NotEmpty(t, C.Pubsub.Topic, "Pubsub topic should default")
}
