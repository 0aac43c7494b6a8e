package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestManager_SaveAndResolve_Redis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	manager := NewManager(NewRedisStore(db, time.Hour), false)
	ctx := context.Background()

	mock.ExpectSet(sessionKeyPrefix+"tok-1", "user-1", time.Hour).SetVal("OK")
	rec := httptest.NewRecorder()
	require.NoError(t, manager.Save(ctx, rec, "tok-1", "user-1"))

	cookies := rec.Result().Cookies()
	tokenCookie := cookieByName(cookies, CookieToken)
	require.NotNil(t, tokenCookie)
	assert.Equal(t, "tok-1", tokenCookie.Value)
	assert.Equal(t, "/", tokenCookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, tokenCookie.SameSite)
	assert.Zero(t, tokenCookie.MaxAge)
	userIDCookie := cookieByName(cookies, CookieUserID)
	require.NotNil(t, userIDCookie)
	assert.Equal(t, "user-1", userIDCookie.Value)

	mock.ExpectGet(sessionKeyPrefix + "tok-1").SetVal("user-1")
	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	state := manager.Resolve(ctx, req)
	assert.True(t, state.IsAuthenticated())
	assert.Equal(t, "tok-1", state.Token)
	assert.Equal(t, "user-1", state.UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_Resolve_CookieFallback(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	manager := NewManager(NewRedisStore(db, time.Hour), false)

	// store lost the session, the user id cookie still wins over a logout
	mock.ExpectGet(sessionKeyPrefix + "tok-1").RedisNil()
	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	req.AddCookie(&http.Cookie{Name: CookieToken, Value: "tok-1"})
	req.AddCookie(&http.Cookie{Name: CookieUserID, Value: "user-1"})

	state := manager.Resolve(context.Background(), req)
	assert.True(t, state.IsAuthenticated())
	assert.Equal(t, "user-1", state.UserID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_Resolve_PartialSession(t *testing.T) {
	manager := NewManager(NewMemoryStore(time.Hour), false)

	// token cookie only, store knows nothing about it and there is no
	// user id cookie to fall back on
	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	req.AddCookie(&http.Cookie{Name: CookieToken, Value: "tok-orphan"})

	state := manager.Resolve(context.Background(), req)
	assert.Equal(t, "tok-orphan", state.Token)
	assert.Empty(t, state.UserID)
	assert.False(t, state.IsAuthenticated())
}

func TestManager_Resolve_NormalizesCookieToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	manager := NewManager(store, false)
	ctx := context.Background()

	rec := httptest.NewRecorder()
	require.NoError(t, manager.Save(ctx, rec, "Bearer tok-9", "user-9"))

	// an encoded, "Bearer "-prefixed cookie still finds its session
	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	req.AddCookie(&http.Cookie{Name: CookieToken, Value: "Bearer%20tok-9"})

	state := manager.Resolve(ctx, req)
	assert.Equal(t, "tok-9", state.Token)
	assert.Equal(t, "user-9", state.UserID)
	assert.True(t, state.IsAuthenticated())
}

func TestManager_Resolve_NoCookie(t *testing.T) {
	manager := NewManager(NewMemoryStore(time.Hour), false)
	req := httptest.NewRequest(http.MethodGet, "/app", nil)
	state := manager.Resolve(context.Background(), req)
	assert.False(t, state.IsAuthenticated())
	assert.Empty(t, state.UserID)
}

func TestManager_Clear(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	manager := NewManager(NewRedisStore(db, time.Hour), false)

	mock.ExpectDel(sessionKeyPrefix + "tok-1").SetVal(1)
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: CookieToken, Value: "tok-1"})
	req.AddCookie(&http.Cookie{Name: CookieUserID, Value: "user-1"})
	rec := httptest.NewRecorder()
	manager.Clear(context.Background(), rec, req)

	cookies := rec.Result().Cookies()
	tokenCookie := cookieByName(cookies, CookieToken)
	require.NotNil(t, tokenCookie)
	assert.Empty(t, tokenCookie.Value)
	assert.Equal(t, -1, tokenCookie.MaxAge)
	userIDCookie := cookieByName(cookies, CookieUserID)
	require.NotNil(t, userIDCookie)
	assert.Equal(t, -1, userIDCookie.MaxAge)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	token := gofakeit.UUID()
	userID := gofakeit.UUID()

	_, err := store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, store.Set(ctx, token, userID))
	gotUserID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUserID)

	require.NoError(t, store.Del(ctx, token))
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
