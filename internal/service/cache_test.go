package service

import (
	"cinema_reservation/db/redis"
	"cinema_reservation/model"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.SetClientForTest(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestJwtDataCache(t *testing.T) {
	mr := setupTestRedis(t)

	err := SetJwtDataCache("some-refresh-token", "logout", time.Minute)
	require.NoError(t, err)

	value, err := GetJwtDataCache("some-refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "logout", value)

	// keys carry the jwt prefix so they never collide with movie entries
	assert.True(t, mr.Exists("jwtKey:some-refresh-token"))

	mr.FastForward(2 * time.Minute)
	_, err = GetJwtDataCache("some-refresh-token")
	assert.Error(t, err)
}

func TestMovieSnapshotCache(t *testing.T) {
	mr := setupTestRedis(t)

	snapshot := &model.MovieSnapshot{
		MovieId:   77,
		Title:     "Maratonci trce pocasni krug",
		StartDate: "2026-05-01",
		Rating:    4.8,
	}
	require.NoError(t, setMovieSnapshotCache(snapshot))
	assert.True(t, mr.Exists("movie:77"))

	cached, err := getCachedMovieSnapshot(77)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, snapshot.Title, cached.Title)
	assert.Equal(t, snapshot.Rating, cached.Rating)

	deleteMovieSnapshotCache(77)
	assert.False(t, mr.Exists("movie:77"))
}

func TestMovieSnapshotCache_Miss(t *testing.T) {
	setupTestRedis(t)

	cached, _ := getCachedMovieSnapshot(12345)
	assert.Nil(t, cached)
}

func TestLogoutBlacklistsRefreshToken(t *testing.T) {
	mr := setupTestRedis(t)

	svc := NewUserService(newFakeUserRepo())
	err := svc.Logout("refresh-token-value", time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)
	assert.True(t, mr.Exists("jwtKey:refresh-token-value"))

	// already expired token has nothing left to blacklist
	err = svc.Logout("stale-token", time.Now().Add(-time.Hour).Unix())
	require.NoError(t, err)
	assert.False(t, mr.Exists("jwtKey:stale-token"))
}
