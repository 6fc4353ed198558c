package keychain

import (
	"context"
	"database/sql"
	"errors"

	_ "embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Store keeps long-lived credential material in sqlite, keyed by
// (namespace, id). Passwords and cookie tokens are stored as-is; the
// database file is expected to live somewhere with appropriate
// permissions.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the keychain database at path. ":memory:"
// works for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(schema)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type UsernamePassword struct {
	Username string
	Password string
}

// CookieIdentity is the cookie-replay credential pair for an account:
// the li_at token and the JSESSIONID value captured from a browser
// session.
type CookieIdentity struct {
	AuthToken     string
	SessionCookie string
}

func (s *Store) SetUsernamePassword(ctx context.Context, namespace, id string, key UsernamePassword) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO username_password (namespace, id, username, password)
		 VALUES (?, ?, ?, ?)`,
		namespace, id, key.Username, key.Password,
	)
	return err
}

func (s *Store) GetUsernamePassword(ctx context.Context, namespace, id string) (UsernamePassword, bool, error) {
	var key UsernamePassword
	err := s.db.QueryRowContext(
		ctx,
		`SELECT username, password FROM username_password WHERE namespace = ? AND id = ?`,
		namespace, id,
	).Scan(&key.Username, &key.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return UsernamePassword{}, false, nil
	}
	if err != nil {
		return UsernamePassword{}, false, err
	}
	return key, true, nil
}

func (s *Store) SetCookieIdentity(ctx context.Context, namespace, id string, key CookieIdentity) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO cookie_identity (namespace, id, auth_token, session_cookie)
		 VALUES (?, ?, ?, ?)`,
		namespace, id, key.AuthToken, key.SessionCookie,
	)
	return err
}

func (s *Store) GetCookieIdentity(ctx context.Context, namespace, id string) (CookieIdentity, bool, error) {
	var key CookieIdentity
	err := s.db.QueryRowContext(
		ctx,
		`SELECT auth_token, session_cookie FROM cookie_identity WHERE namespace = ? AND id = ?`,
		namespace, id,
	).Scan(&key.AuthToken, &key.SessionCookie)
	if errors.Is(err, sql.ErrNoRows) {
		return CookieIdentity{}, false, nil
	}
	if err != nil {
		return CookieIdentity{}, false, err
	}
	return key, true, nil
}
