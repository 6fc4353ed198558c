// Package sessions hands out authenticated voyager clients keyed by
// account id, backed by the keychain for credentials and an expiring
// cache so repeated lookups reuse a live session instead of logging in
// again.
package sessions

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"voyager-client/lib/keychain"
	"voyager-client/lib/scrapers/voyager/api"
	"voyager-client/lib/scrapers/voyager/core"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const keychainNamespace = "voyager"

const (
	cacheCapacity = 128
	cacheTTL      = 30 * time.Minute
)

// Cache lends out one authenticated client per account id.
type Cache struct {
	mu       sync.Mutex
	cache    *expirable.LRU[string, api.Client]
	keychain *keychain.Store
	options  core.ClientOptions
}

// NewCache builds a session cache over the given keychain. The options
// act as a template; each account gets its own cookie file derived
// from the template's CookieFile directory.
func NewCache(keychain *keychain.Store, options core.ClientOptions) *Cache {
	return &Cache{
		cache:    expirable.NewLRU[string, api.Client](cacheCapacity, nil, cacheTTL),
		keychain: keychain,
		options:  options,
	}
}

// Get returns a ready client for the account, authenticating one if no
// live session is cached. Credentials come from the keychain; an
// account with neither a password nor a cookie identity is an error.
func (c *Cache) Get(ctx context.Context, id string) (api.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.cache.Get(id); ok {
		return client, nil
	}

	identity, err := c.lookupIdentity(ctx, id)
	if err != nil {
		return api.Client{}, err
	}

	options := c.options
	options.CookieFile = filepath.Join(
		filepath.Dir(c.options.CookieFile),
		fmt.Sprintf(".cookies.%s.json", id),
	)

	client, err := api.NewClient(ctx, identity, false, options)
	if err != nil {
		return api.Client{}, fmt.Errorf("establish session for %q: %w", id, err)
	}

	c.cache.Add(id, client)
	return client, nil
}

// Evict drops the cached session for an account, forcing the next Get
// to authenticate again.
func (c *Cache) Evict(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Remove(id)
}

func (c *Cache) lookupIdentity(ctx context.Context, id string) (core.Identity, error) {
	var identity core.Identity

	password, ok, err := c.keychain.GetUsernamePassword(ctx, keychainNamespace, id)
	if err != nil {
		return core.Identity{}, err
	}
	if ok {
		identity.Username = password.Username
		identity.Password = password.Password
	}

	cookies, ok, err := c.keychain.GetCookieIdentity(ctx, keychainNamespace, id)
	if err != nil {
		return core.Identity{}, err
	}
	if ok {
		identity.AuthToken = cookies.AuthToken
		identity.SessionCookie = cookies.SessionCookie
	}

	if identity == (core.Identity{}) {
		return core.Identity{}, fmt.Errorf("no credentials in keychain for %q", id)
	}
	return identity, nil
}
