package di

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/sghaida/typealias/alias"
)

var (
	// ErrNilTarget is returned when an injector is applied to a nil service
	// or a service with a nil Val.
	ErrNilTarget = errors.New("di: nil target service")

	// ErrNilBind is matched by NilBindError.
	ErrNilBind = errors.New("di: nil bind function")
)

// DependencyKey identifies a dependency stored in a Service's Deps bag.
//
// Keys are abstract names. When the Service has an alias registry attached,
// any alias of a key finds the same dependency.
//
//	const (
//	  KeyDB     di.DependencyKey = "DB"
//	  KeyLogger di.DependencyKey = "Logger"
//	)
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

// DuplicateKeyError is returned when an injector attempts to register a dependency
// under a key that already exists in the target Service. Key is the resolved key.
type DuplicateKeyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: di: duplicate dependency key "DB"
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned when a dependency key is not present.
type MissingDependencyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	// Example: di: dependency "db" missing
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned when a dependency exists but is of a different type.
type WrongTypeDependencyError struct {
	// Key is the dependency key requested.
	Key DependencyKey

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	// Example: di: dependency "db" has wrong type (*mypkg.Logger)
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// KeyResolutionError is returned when a dependency key cannot be resolved
// through the attached alias registry, typically because its chain is circular.
type KeyResolutionError struct {
	Key DependencyKey
	Err error
}

// Error implements the error interface.
func (e KeyResolutionError) Error() string {
	// Example: di: dependency key "db": alias: circular alias reference detected for "db"
	return "di: dependency key " + strconv.Quote(string(e.Key)) + ": " + e.Err.Error()
}

// Unwrap returns the alias registry error.
func (e KeyResolutionError) Unwrap() error { return e.Err }

// NilDependencyServiceError indicates a nil dependency service for a specific key.
type NilDependencyServiceError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilDependencyServiceError) Error() string {
	return "di: nil dependency service for key " + strconv.Quote(string(e.Key))
}

// NilBindError indicates a nil bind function for a specific key.
type NilBindError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilBindError) Error() string {
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}

// Is reports whether target is ErrNilBind.
func (e NilBindError) Is(target error) bool { return target == ErrNilBind }

// Service wraps a constructed value plus the dependencies injected into it.
//
// Deps is keyed by resolved (abstract) keys. Lookups go through the attached
// alias registry, if any, so a dependency injected as "Logger" is found as "log".
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any

	aliases alias.Interface
}

// Init constructs a Service by calling ctor and initializing the dependency bag.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Value returns the constructed value pointer.
func (s *Service[T]) Value() *T { return s.Val }

// WithAliases attaches an alias registry used to resolve dependency keys and
// returns the service for chaining.
func (s *Service[T]) WithAliases(aliases alias.Interface) *Service[T] {
	s.aliases = aliases
	return s
}

// resolveKey maps key to its abstract name through the attached alias registry.
func (s *Service[T]) resolveKey(key DependencyKey) (DependencyKey, error) {
	if s.aliases == nil {
		return key, nil
	}
	name, err := s.aliases.Resolve(string(key))
	if err != nil {
		return "", KeyResolutionError{Key: key, Err: err}
	}
	return DependencyKey(name), nil
}

// lookup returns the raw dependency stored under the resolved key.
func (s *Service[T]) lookup(key DependencyKey) (any, bool, error) {
	if s == nil || s.Deps == nil {
		return nil, false, nil
	}
	name, err := s.resolveKey(key)
	if err != nil {
		return nil, false, err
	}
	raw, ok := s.Deps[name]
	return raw, ok, nil
}

// Injector mutates a Service in-place and returns an error if wiring fails.
type Injector[T any] func(*Service[T]) error

// With applies a single injector to the Service.
//
// If inj is nil, With is a no-op and returns (s, nil).
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}
	if err := inj(s); err != nil {
		return s, err
	}
	return s, nil
}

// WithAll applies multiple injectors in order.
//
// It stops at the first error and returns that error.
func (s *Service[T]) WithAll(deps ...Injector[T]) (*Service[T], error) {
	for _, inj := range deps {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting builds an Injector that binds a dependency into a target.
//
// The key is resolved through the target's alias registry before it is
// recorded, so injecting "log" and then "Logger" is a duplicate when log is
// an alias of Logger.
//
// The returned injector fails if:
//   - the target service (or its Val) is nil (ErrNilTarget)
//   - the dependency service (or its Val) is nil (NilDependencyServiceError)
//   - bind is nil (NilBindError)
//   - the key's alias chain is circular (KeyResolutionError)
//   - the resolved key already exists in the target's Deps (DuplicateKeyError)
func Injecting[T any, D any](
	key DependencyKey,
	dep *Service[D],
	bind func(target *T, dependency *D),
) Injector[T] {
	return func(s *Service[T]) error {
		if s == nil || s.Val == nil {
			return ErrNilTarget
		}
		if dep == nil || dep.Val == nil {
			return NilDependencyServiceError{Key: key}
		}
		if bind == nil {
			return NilBindError{Key: key}
		}
		name, err := s.resolveKey(key)
		if err != nil {
			return err
		}
		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, exists := s.Deps[name]; exists {
			return DuplicateKeyError{Key: name}
		}

		d := dep.Val
		s.Deps[name] = d
		bind(s.Val, d)
		return nil
	}
}

// Has reports whether a dependency exists for the key (regardless of type).
// A key with a circular alias chain is reported as absent.
func (s *Service[T]) Has(key DependencyKey) bool {
	_, ok, err := s.lookup(key)
	return ok && err == nil
}

// GetAny returns the raw stored dependency value without type assertions.
func (s *Service[T]) GetAny(key DependencyKey) (any, bool) {
	raw, ok, err := s.lookup(key)
	if err != nil {
		return nil, false
	}
	return raw, ok
}

// GetAs returns the dependency typed as *D.
//
// ok is false if the key is missing, unresolvable, or the stored value is not a *D.
func GetAs[T any, D any](s *Service[T], key DependencyKey) (*D, bool) {
	d, err := TryGetAs[T, D](s, key)
	return d, err == nil
}

// TryGetAs returns the dependency typed as *D.
//
// It returns:
//   - KeyResolutionError if the key's alias chain is circular
//   - MissingDependencyError if the key is not present
//   - WrongTypeDependencyError if the key exists but is not a *D
func TryGetAs[T any, D any](s *Service[T], key DependencyKey) (*D, error) {
	raw, ok, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{
			Key:     key,
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return d, nil
}

// MustGetAs returns the dependency typed as *D or panics with the TryGetAs error.
func MustGetAs[T any, D any](s *Service[T], key DependencyKey) *D {
	d, err := TryGetAs[T, D](s, key)
	if err != nil {
		panic(err)
	}
	return d
}

// Clone returns a shallow copy of the Service.
//
// Val and the alias registry are shared. Deps is copied so further wiring
// does not mutate the original Service's Deps.
func (s *Service[T]) Clone() *Service[T] {
	if s == nil {
		return nil
	}
	cp := &Service[T]{Val: s.Val, aliases: s.aliases}
	cp.Deps = make(map[DependencyKey]any, len(s.Deps))
	for k, v := range s.Deps {
		cp.Deps[k] = v
	}
	return cp
}
