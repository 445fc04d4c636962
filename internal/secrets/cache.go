package secrets

import (
	"context"
	"sync"
)

// ClientFactory builds a Client for a region.
type ClientFactory func(ctx context.Context, region string) (Client, error)

// Cache holds the secret bundle for the life of the process. The first
// successful Load is kept and returned by every later call, regardless of the
// name or region passed; it is never refreshed, so a rotated secret is only
// picked up by a new process. A failed Load leaves the cache empty.
type Cache struct {
	mu        sync.Mutex
	newClient ClientFactory
	bundle    *Bundle
}

// NewCache returns an empty cache. A nil factory uses NewClient.
func NewCache(newClient ClientFactory) *Cache {
	if newClient == nil {
		newClient = NewClient
	}
	return &Cache{newClient: newClient}
}

// Load returns the cached bundle, fetching it on first use.
func (c *Cache) Load(ctx context.Context, name, region string) (*Bundle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bundle != nil {
		return c.bundle, nil
	}

	client, err := c.newClient(ctx, region)
	if err != nil {
		return nil, &FetchError{Name: name, Region: region, Err: err}
	}
	raw, err := FetchSecretString(ctx, client, name)
	if err != nil {
		return nil, &FetchError{Name: name, Region: region, Err: err}
	}

	c.bundle = NewBundle(raw)
	return c.bundle, nil
}

// Loaded reports whether a bundle has been cached.
func (c *Cache) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bundle != nil
}
