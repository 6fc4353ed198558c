package core

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/codes"
)

// Identity is the long-lived credential material for an account:
// either the cookie-replay pair (AuthToken + SessionCookie) captured
// from a browser session, or a username/password for an interactive
// login. Borrowed for the duration of Authenticate, never mutated.
type Identity struct {
	Username string
	Password string
	// value of the li_at cookie
	AuthToken string
	// value of the JSESSIONID cookie
	SessionCookie string
}

// headers that make the login handshake look like the official mobile
// client; the upstream flags sessions whose signature deviates from a
// known client, so these values must not drift
var mobileClientHeaders = map[string]string{
	"X-Li-User-Agent": "LIAuthLibrary:3.2.4 com.linkedin.LinkedIn:8.8.1 iPhone:8.3",
	"User-Agent":      "LinkedIn/8.8.1 CFNetwork/711.3.18 Darwin/14.0.0",
	"X-User-Language": "en",
	"X-User-Locale":   "en_US",
	"Accept-Language": "en-us",
}

// Authenticate establishes the session, reusing the persisted cookie
// set unless refreshCookies forces a fresh login. It is meant to run
// once per client; a session that expires later surfaces as ordinary
// request errors, there is no automatic re-login.
//
// A fresh login primes the session cookies with a GET, replays the
// identity's cookie pair, then posts the credential form. A 401 maps
// to ErrUnauthorized, any other non-200 to StatusError, and a
// login_result other than "PASS" to ChallengeError. On success the
// cookie set is persisted for later reuse.
func (c *Client) Authenticate(ctx context.Context, identity Identity, refreshCookies bool) error {
	ctx, span := tracer.Start(ctx, "client:Authenticate")
	defer span.End()

	// any load failure, absent file or unreadable contents, means the
	// persisted session is unusable and a fresh login is needed
	if !refreshCookies && c.cookies.load() == nil {
		return nil
	}

	// the upstream hands out the initial JSESSIONID here, before any
	// credentials are presented
	_, err := c.http.R().
		SetContext(ctx).
		SetHeaders(mobileClientHeaders).
		Get(c.authBase + "/uas/authenticate")
	if err != nil {
		span.SetStatus(codes.Error, "failed to request session cookies")
		return err
	}

	c.cookies.inject("li_at", identity.AuthToken)
	c.cookies.inject(sessionCookieName, identity.SessionCookie)

	res, err := c.http.R().
		SetContext(ctx).
		SetHeaders(mobileClientHeaders).
		SetFormData(map[string]string{
			"session_key":      identity.Username,
			"session_password": identity.Password,
			sessionCookieName:  c.cookies.sessionID(),
		}).
		Post(c.authBase + "/uas/authenticate")
	if err != nil {
		span.SetStatus(codes.Error, "login request failed")
		return err
	}

	if res.StatusCode() == http.StatusUnauthorized {
		span.SetStatus(codes.Error, ErrUnauthorized.Error())
		return ErrUnauthorized
	}
	if res.StatusCode() != http.StatusOK {
		err := StatusError{Code: res.StatusCode()}
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	var result struct {
		LoginResult string `json:"login_result"`
	}
	err = json.Unmarshal(res.Body(), &result)
	if err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if result.LoginResult != "" && result.LoginResult != "PASS" {
		err := ChallengeError{Result: result.LoginResult}
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return c.cookies.save()
}
