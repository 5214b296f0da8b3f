package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyforge/server/internal/service"
	"github.com/storyforge/server/internal/testutil"
)

func TestRegisterCreatesAccountAndProfile(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)

	result, err := f.Services.Auth.Register(ctx, service.RegisterInput{DisplayName: "Riley", Password: "hunter22"})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Riley", result.Player.DisplayName)
	assert.NotEqual(t, "hunter22", result.Player.PasswordHash)

	profile, err := f.Services.Profile.Get(ctx, result.Player.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Player.ID, profile.ID)
	assert.Equal(t, "Riley", profile.Name)
	assert.Equal(t, 1, profile.Level)

	_, err = f.Services.Auth.Register(ctx, service.RegisterInput{DisplayName: "Riley", Password: "other"})
	assert.ErrorIs(t, err, service.ErrDisplayNameExists)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)

	_, err := f.Services.Auth.Register(ctx, service.RegisterInput{DisplayName: "Riley", Password: "hunter22"})
	require.NoError(t, err)

	result, err := f.Services.Auth.Login(ctx, service.LoginInput{DisplayName: "Riley", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	_, err = f.Services.Auth.Login(ctx, service.LoginInput{DisplayName: "Riley", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = f.Services.Auth.Login(ctx, service.LoginInput{DisplayName: "Nobody", Password: "hunter22"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)

	result, err := f.Services.Auth.Register(ctx, service.RegisterInput{DisplayName: "Riley", Password: "hunter22"})
	require.NoError(t, err)

	claims, err := f.Services.Auth.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.Player.ID.String(), (*claims)["sub"])
	assert.Equal(t, "Riley", (*claims)["name"])

	_, err = f.Services.Auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestRefreshTokensRotate(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)

	registered, err := f.Services.Auth.Register(ctx, service.RegisterInput{DisplayName: "Riley", Password: "hunter22"})
	require.NoError(t, err)

	refreshed, err := f.Services.Auth.RefreshTokens(ctx, registered.Player.ID, registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The old refresh token was rotated out.
	_, err = f.Services.Auth.RefreshTokens(ctx, registered.Player.ID, registered.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidRefresh)

	_, err = f.Services.Auth.RefreshTokens(ctx, registered.Player.ID, "bogus")
	assert.ErrorIs(t, err, service.ErrInvalidRefresh)
}

func TestLogoutInvalidatesRefresh(t *testing.T) {
	ctx := context.Background()
	f := testutil.NewFixture(nil, 1, nil)

	registered, err := f.Services.Auth.Register(ctx, service.RegisterInput{DisplayName: "Riley", Password: "hunter22"})
	require.NoError(t, err)
	require.NoError(t, f.Services.Auth.Logout(ctx, registered.Player.ID))

	_, err = f.Services.Auth.RefreshTokens(ctx, registered.Player.ID, registered.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidRefresh)
}
