// Package api exposes the voyager data operations on top of the paced
// session client. Every method issues paced requests and returns typed
// results; transport level pacing, csrf handling and cookie state live
// in the core package.
package api

import (
	"context"
	"fmt"
	"net/http"

	"voyager-client/lib/jsonnav"
	"voyager-client/lib/scrapers/voyager/core"
	"voyager-client/lib/urn"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/voyager/api")

const (
	// page size for feed update requests
	maxUpdateCount = 100
	// page size cap for blended search requests
	maxSearchCount = 49
)

// Client is a cheap handle over one authenticated session; copy it
// freely.
type Client struct {
	core *core.Client
}

// NewClient builds a session client and authenticates it. The returned
// client is ready for data operations.
func NewClient(ctx context.Context, identity core.Identity, refreshCookies bool, opts core.ClientOptions) (Client, error) {
	inner, err := core.NewClient(opts)
	if err != nil {
		return Client{}, err
	}
	err = inner.Authenticate(ctx, identity, refreshCookies)
	if err != nil {
		return Client{}, err
	}
	return Client{core: inner}, nil
}

// ProfileRef identifies a profile either by its public id or by a full
// entity urn. At least one must be set.
type ProfileRef struct {
	PublicID string
	URN      string
}

func (r ProfileRef) id() (string, error) {
	if r.PublicID != "" {
		return r.PublicID, nil
	}
	if r.URN != "" {
		parsed, err := urn.Parse(r.URN)
		if err != nil {
			return "", fmt.Errorf("%w: %w", core.ErrInvalidInput, err)
		}
		return parsed.ID, nil
	}
	return "", core.ErrMissingIdentifier
}

// getJson issues a paced GET and decodes the response body. Status
// interpretation stays with the caller; error bodies are often empty
// or non-JSON, so a decode failure on a non-200 yields an absent node
// rather than an error.
func (c Client) getJson(ctx context.Context, path string) (jsonnav.Node, int, error) {
	res, err := c.core.Get(ctx, path)
	if err != nil {
		return jsonnav.Node{}, 0, err
	}
	node, err := jsonnav.Decode(res.Body())
	if err != nil {
		if res.StatusCode() == http.StatusOK {
			return jsonnav.Node{}, res.StatusCode(), fmt.Errorf("decode response for %s: %w", path, err)
		}
		return jsonnav.Node{}, res.StatusCode(), nil
	}
	return node, res.StatusCode(), nil
}
