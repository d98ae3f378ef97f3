package di

import (
	"errors"
	"fmt"

	"github.com/sghaida/typealias/alias"
)

// Registry provides values by abstract name at build time.
//
// It is intentionally:
// - read-only
// - side effect free
// - build-time only
//
// Expected usage:
//
//	val, ok, err := reg.Resolve(cfg, "Logger")
type Registry interface {
	Resolve(cfg any, key string) (val any, ok bool, err error)
}

// ErrRegistryPanic is returned if a registry implementation panics internally.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// MapRegistry is a simple in-memory registry keyed by abstract names.
//
// When an alias registry is attached, every lookup key is resolved through it
// first, so values provided under "Logger" are also found as "log".
// It ignores cfg (but keeps it in the signature so future registries can use it).
type MapRegistry struct {
	items   map[string]any
	aliases alias.Interface
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]any{}}
}

// WithAliases attaches an alias registry and returns the registry for chaining.
//
// The alias registry is consulted on every lookup, so aliases added later
// take effect immediately.
func (r *MapRegistry) WithAliases(aliases alias.Interface) *MapRegistry {
	r.aliases = aliases
	return r
}

// Provide stores a value under a key and returns the registry for chaining.
//
// The key is stored as given; aliasing it afterwards does not move the value.
func (r *MapRegistry) Provide(key string, val any) *MapRegistry {
	r.items[key] = val
	return r
}

// canonical resolves key through the attached alias registry.
func (r *MapRegistry) canonical(key string) (string, error) {
	if r.aliases == nil {
		return key, nil
	}
	return r.aliases.Resolve(key)
}

// Resolve implements Registry and defensively converts panics into errors.
//
// A circular alias chain is returned as an error wrapping
// alias.ErrCircularReference.
func (r *MapRegistry) Resolve(_ any, key string) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	name, err := r.canonical(key)
	if err != nil {
		return nil, false, fmt.Errorf("di: resolve %q: %w", key, err)
	}
	v, ok := r.items[name]
	return v, ok, nil
}

// Get returns the value if present (no panic).
//
// A key whose alias chain is circular is reported as missing.
func (r *MapRegistry) Get(key string) (any, bool) {
	name, err := r.canonical(key)
	if err != nil {
		return nil, false
	}
	v, ok := r.items[name]
	return v, ok
}

// MustGet returns the value or panics with a helpful message.
// Useful in examples/tests where missing registry keys should fail fast.
func (r *MapRegistry) MustGet(key string) any {
	name, err := r.canonical(key)
	if err != nil {
		panic(fmt.Errorf("di: registry key %q: %w", key, err))
	}
	v, ok := r.items[name]
	if !ok {
		if name != key {
			panic(fmt.Errorf("di: registry missing key %q (resolved from %q)", name, key))
		}
		panic(fmt.Errorf("di: registry missing key %q", key))
	}
	return v
}
