package core

import (
	"io/fs"
	"net/http/cookiejar"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, file string) *cookieStore {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	base, err := url.Parse("http://voyager.test")
	require.NoError(t, err)
	return newCookieStore(jar, base, file)
}

func TestCookieRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cookies.json")

	store := newTestStore(t, file)
	store.inject("li_at", "token-value")
	store.inject(sessionCookieName, `"ajax:123"`)
	require.NoError(t, store.save())

	fresh := newTestStore(t, file)
	require.NoError(t, fresh.load())

	cookies := map[string]string{}
	for _, cookie := range fresh.jar.Cookies(fresh.base) {
		cookies[cookie.Name] = cookie.Value
	}
	require.Equal(t, "token-value", cookies["li_at"])
	require.Contains(t, cookies, sessionCookieName)
	require.Equal(t, "ajax:123", fresh.sessionID())
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "absent.json"))
	err := store.load()
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSessionIDAbsent(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "cookies.json"))
	require.Equal(t, "", store.sessionID())
}

func TestSaveOverwrites(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cookies.json")

	store := newTestStore(t, file)
	store.inject("li_at", "first")
	require.NoError(t, store.save())

	store.inject("li_at", "second")
	require.NoError(t, store.save())

	fresh := newTestStore(t, file)
	require.NoError(t, fresh.load())
	cookies := fresh.jar.Cookies(fresh.base)
	require.Len(t, cookies, 1)
	require.Equal(t, "second", cookies[0].Value)
}
