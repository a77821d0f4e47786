package state

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftroots/storefront/internal/config"
	"github.com/craftroots/storefront/internal/model"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		SimulatedLatency: 0,
		DefaultAvatar:    "https://example.com/avatar.png",
	}
}

func TestAuth_RegisterAndLoginFlow(t *testing.T) {
	bridge, backend := testBridge()
	auth := NewAuth(bridge, testAuthConfig(), testLogger())
	ctx := context.Background()

	ok := auth.Register(ctx, "Ana López", "ana@example.com", "password123")
	require.True(t, ok)

	snap := auth.State()
	require.True(t, snap.IsAuthenticated)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Ana López", snap.User.Name)
	assert.Equal(t, "ana@example.com", snap.User.Email)
	assert.Equal(t, "https://example.com/avatar.png", snap.User.Avatar)
	assert.NotEmpty(t, snap.User.ID)
	assert.Equal(t, time.Now().Format("January 2006"), snap.User.JoinedDate)
	assert.False(t, snap.IsLoading)

	// Session persisted for restore.
	_, stored, err := backend.Get(model.KeyAuthUser)
	require.NoError(t, err)
	assert.True(t, stored)

	auth.Logout()
	snap = auth.State()
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)
	_, stored, err = backend.Get(model.KeyAuthUser)
	require.NoError(t, err)
	assert.False(t, stored, "logout removes the session key")

	// Logout keeps the registered account usable.
	assert.True(t, auth.Login(ctx, "ana@example.com", "password123"))
	assert.True(t, auth.State().IsAuthenticated)
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	bridge, _ := testBridge()
	auth := NewAuth(bridge, testAuthConfig(), testLogger())
	ctx := context.Background()

	require.True(t, auth.Register(ctx, "Ana", "a@x.com", "password123"))
	assert.False(t, auth.Register(ctx, "Other", "a@x.com", "different456"))

	var creds []model.Credential
	require.True(t, bridge.Read(model.KeyRegisteredUsers, &creds))
	assert.Len(t, creds, 1, "failed register must not mutate the set")
	assert.Equal(t, "Ana", creds[0].Name)
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	bridge, _ := testBridge()
	auth := NewAuth(bridge, testAuthConfig(), testLogger())

	assert.False(t, auth.Login(context.Background(), "nobody@example.com", "whatever"))
	assert.False(t, auth.State().IsAuthenticated)
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	bridge, _ := testBridge()
	auth := NewAuth(bridge, testAuthConfig(), testLogger())
	ctx := context.Background()

	require.True(t, auth.Register(ctx, "Ana", "ana@example.com", "password123"))
	auth.Logout()

	assert.False(t, auth.Login(ctx, "ana@example.com", "wrong"))
	assert.False(t, auth.State().IsAuthenticated)
}

func TestAuth_EmailMatchIsCaseSensitive(t *testing.T) {
	bridge, _ := testBridge()
	auth := NewAuth(bridge, testAuthConfig(), testLogger())
	ctx := context.Background()

	require.True(t, auth.Register(ctx, "Ana", "Ana@Example.com", "password123"))
	auth.Logout()

	assert.False(t, auth.Login(ctx, "ana@example.com", "password123"))
	assert.True(t, auth.Login(ctx, "Ana@Example.com", "password123"))
}

func TestAuth_PasswordsStoredHashed(t *testing.T) {
	bridge, _ := testBridge()
	auth := NewAuth(bridge, testAuthConfig(), testLogger())

	require.True(t, auth.Register(context.Background(), "Ana", "ana@example.com", "password123"))

	var creds []model.Credential
	require.True(t, bridge.Read(model.KeyRegisteredUsers, &creds))
	require.Len(t, creds, 1)
	assert.NotEqual(t, "password123", creds[0].PasswordHash)
	assert.NotContains(t, creds[0].PasswordHash, "password123")
}

func TestAuth_SessionRestore(t *testing.T) {
	bridge, _ := testBridge()
	first := NewAuth(bridge, testAuthConfig(), testLogger())
	require.True(t, first.Register(context.Background(), "Ana", "ana@example.com", "password123"))
	userID := first.State().User.ID

	second := NewAuth(bridge, testAuthConfig(), testLogger())
	snap := second.State()
	require.True(t, snap.IsAuthenticated)
	assert.Equal(t, userID, snap.User.ID)
}

func TestAuth_CorruptSessionDiscarded(t *testing.T) {
	bridge, backend := testBridge()
	require.NoError(t, backend.Set(model.KeyAuthUser, []byte("{oops")))

	auth := NewAuth(bridge, testAuthConfig(), testLogger())
	snap := auth.State()
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)

	_, ok, err := backend.Get(model.KeyAuthUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuth_SubscribersSeeTransitions(t *testing.T) {
	bridge, _ := testBridge()
	auth := NewAuth(bridge, testAuthConfig(), testLogger())

	var states []model.AuthState
	cancel := auth.Subscribe(func(s model.AuthState) { states = append(states, s) })
	defer cancel()

	require.True(t, auth.Register(context.Background(), "Ana", "ana@example.com", "password123"))

	// Loading transition first, then the authenticated commit.
	require.Len(t, states, 2)
	assert.True(t, states[0].IsLoading)
	assert.False(t, states[0].IsAuthenticated)
	assert.False(t, states[1].IsLoading)
	assert.True(t, states[1].IsAuthenticated)
}
