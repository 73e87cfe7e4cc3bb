package dns

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// Factory constructs a Provider from its settings. Provider packages register
// themselves in their init().
type Factory func(ctx context.Context, log logr.Logger, settings map[string]string) (Provider, error)

var (
	mu        sync.Mutex
	factories = map[string]Factory{}

	// Provider construction can be expensive (credential resolution), so
	// instances are reused per (name, settings) for a while.
	providerCache = gocache.New(15*time.Minute, 60*time.Second)
)

// Register adds a named provider factory. It panics on duplicate names.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("dns: provider %q already registered", name))
	}
	factories[name] = factory
}

// NewProvider looks up the named provider factory and constructs (or reuses)
// an instance configured by settings.
func NewProvider(ctx context.Context, name string, log logr.Logger, settings map[string]string) (Provider, error) {
	mu.Lock()
	factory, ok := factories[name]
	names := registeredLocked()
	mu.Unlock()
	if !ok {
		return nil, errors.Errorf("unsupported DNS provider: %q (registered: %v)", name, names)
	}

	cacheKey := name + "/" + fingerprint(settings)
	if cached, ok := providerCache.Get(cacheKey); ok {
		log.V(1).Info("using DNS provider from cache", "provider", name)
		return cached.(Provider), nil
	}

	provider, err := factory(ctx, log, settings)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	providerCache.SetDefault(cacheKey, provider)
	return provider, nil
}

func registeredLocked() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fingerprint(settings map[string]string) string {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+settings[key])
	}
	return strings.Join(pairs, ",")
}
