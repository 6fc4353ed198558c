package core

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
)

const sessionCookieName = "JSESSIONID"

// cookieStore owns the client's cookie jar and its durable copy on
// disk. The jar is written during authentication and read on every
// dispatched request, so all access goes through the store's lock.
//
// The durable format is a JSON array of "Name=Value" strings, fully
// rewritten on every save.
type cookieStore struct {
	mu   sync.Mutex
	jar  http.CookieJar
	base *url.URL
	file string
}

func newCookieStore(jar http.CookieJar, base *url.URL, file string) *cookieStore {
	return &cookieStore{jar: jar, base: base, file: file}
}

func (s *cookieStore) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:   name,
		Value:  value,
		Path:   "/",
		Secure: s.base.Scheme == "https",
	}
}

// inject adds a single cookie for the session's domain.
func (s *cookieStore) inject(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jar.SetCookies(s.base, []*http.Cookie{s.cookie(name, value)})
}

// load reads the persisted cookie set into the jar. A missing file
// reports fs.ErrNotExist so callers can fall back to a fresh login.
func (s *cookieStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := os.ReadFile(s.file)
	if err != nil {
		return fmt.Errorf("read cookie file: %w", err)
	}
	var fragments []string
	err = json.Unmarshal(contents, &fragments)
	if err != nil {
		return fmt.Errorf("decode cookie file: %w", err)
	}

	var cookies []*http.Cookie
	for _, fragment := range fragments {
		name, value, ok := strings.Cut(fragment, "=")
		if !ok {
			continue
		}
		cookies = append(cookies, s.cookie(strings.TrimSpace(name), value))
	}
	s.jar.SetCookies(s.base, cookies)
	return nil
}

// save overwrites the durable cookie file with the jar's current state
// for the session's domain. The contents go to a temp file first and
// are renamed into place so a concurrent load never observes a partial
// write.
func (s *cookieStore) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fragments := []string{}
	for _, cookie := range s.jar.Cookies(s.base) {
		fragments = append(fragments, fmt.Sprintf("%s=%s", cookie.Name, cookie.Value))
	}
	contents, err := json.Marshal(fragments)
	if err != nil {
		return err
	}

	tmp := s.file + ".tmp"
	err = os.WriteFile(tmp, contents, 0600)
	if err != nil {
		return fmt.Errorf("write cookie file: %w", err)
	}
	err = os.Rename(tmp, s.file)
	if err != nil {
		return fmt.Errorf("replace cookie file: %w", err)
	}
	return nil
}

// sessionID returns the current session cookie value with any quoting
// stripped, or "" when no session is active. It never fails.
func (s *cookieStore) sessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cookie := range s.jar.Cookies(s.base) {
		if cookie.Name == sessionCookieName {
			return strings.Trim(cookie.Value, `"`)
		}
	}
	return ""
}
