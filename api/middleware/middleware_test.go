package middleware

import (
	"cinema_reservation/configs"
	"cinema_reservation/db/redis"
	"cinema_reservation/util"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) (*fiber.App, *util.TokenDetail) {
	t.Helper()
	configs.SetConfigsForTest(configs.ConfigStruct{
		AccessTokenSecret:      "access-test-secret",
		RefreshTokenSecret:     "refresh-test-secret",
		AccessTokenExpireHour:  1,
		RefreshTokenExpireHour: 24 * 30,
	})
	mr := miniredis.RunT(t)
	redis.SetClientForTest(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	tokens, err := util.CreateTokens(7, "pera")
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		claims := c.Locals("jwtUserData").(*util.MyJwtClaims)
		return c.JSON(fiber.Map{"username": claims.Username})
	})
	return app, tokens
}

func authRequest(tokens *util.TokenDetail) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	req.Header.Set("refreshToken", tokens.RefreshToken)
	return req
}

func TestAuthMiddleware(t *testing.T) {
	app, tokens := setupAuthTest(t)

	resp, err := app.Test(authRequest(tokens))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_MissingRefreshToken(t *testing.T) {
	app, tokens := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MissingAccessToken(t *testing.T) {
	app, tokens := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("refreshToken", tokens.RefreshToken)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TamperedAccessToken(t *testing.T) {
	app, tokens := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken+"x")
	req.Header.Set("refreshToken", tokens.RefreshToken)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RefreshTokenFromCookie(t *testing.T) {
	app, tokens := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: tokens.RefreshToken})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_BlacklistedRefreshToken(t *testing.T) {
	app, tokens := setupAuthTest(t)

	// a logout puts the refresh token on the blacklist
	err := redis.SetRedis(context.Background(), "jwtKey:"+tokens.RefreshToken, "logout", time.Hour)
	require.NoError(t, err)

	resp, err := app.Test(authRequest(tokens))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
