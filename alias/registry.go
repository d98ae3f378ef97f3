package alias

import (
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// Interface is the full alias registry contract.
//
// It is implemented by *Registry and *SyncRegistry. Consumers (see package di)
// accept an Interface so callers can choose the locking variant.
type Interface interface {
	IsAlias(name string) bool
	Alias(abstract, alias string) error
	AliasReverse(alias, abstract string) error
	Resolve(abstract string) (string, error)
	RemoveAbstractAlias(searched string)
	AllAliases(abstract string) []string
	HasAbstract(abstract string) bool
	Clear()
	AliasMap() map[string]string
}

// Entry is a single alias registration: Alias points at Abstract.
type Entry struct {
	Abstract string `yaml:"abstract"`
	Alias    string `yaml:"alias"`
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
//
// The default logger is zerolog.Nop(). Reads are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithStaleBucketPruning makes Alias drop an alias from every reverse-index
// bucket before appending it to the bucket of its new abstract name.
//
// Without it, re-registering an alias under a different abstract name leaves
// the old bucket entry in place, and re-registering under the same abstract
// name appends a duplicate.
func WithStaleBucketPruning() Option {
	return func(r *Registry) {
		r.pruneStale = true
	}
}

// Registry maps aliases to abstract names.
//
// The zero value is not usable; construct with New.
type Registry struct {
	// aliases maps each alias to its abstract name.
	aliases map[string]string

	// abstractAliases groups aliases by the abstract name they were registered
	// under, in registration order.
	abstractAliases map[string][]string

	logger     zerolog.Logger
	pruneStale bool
}

var _ Interface = (*Registry)(nil)

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		aliases:         make(map[string]string),
		abstractAliases: make(map[string][]string),
		logger:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsAlias reports whether name is registered as an alias.
func (r *Registry) IsAlias(name string) bool {
	_, ok := r.aliases[name]
	return ok
}

// Alias registers alias as pointing to abstract.
//
// It returns InvalidOperationError if alias equals abstract. Longer cycles are
// not checked here; Resolve reports them.
func (r *Registry) Alias(abstract, alias string) error {
	if alias == abstract {
		return InvalidOperationError{Name: abstract}
	}

	if r.pruneStale {
		r.removeFromBuckets(alias)
	}

	prev, existed := r.aliases[alias]
	r.aliases[alias] = abstract
	r.abstractAliases[abstract] = append(r.abstractAliases[abstract], alias)

	ev := r.logger.Debug().Str("alias", alias).Str("abstract", abstract)
	if existed {
		ev = ev.Str("previous", prev)
	}
	ev.Msg("alias registered")
	return nil
}

// AliasReverse is Alias with the arguments swapped.
func (r *Registry) AliasReverse(alias, abstract string) error {
	return r.Alias(abstract, alias)
}

// RegisterAll registers entries in order.
//
// It stops at the first error and returns it; earlier entries stay registered.
func (r *Registry) RegisterAll(entries ...Entry) error {
	for _, e := range entries {
		if err := r.Alias(e.Abstract, e.Alias); err != nil {
			return err
		}
	}
	return nil
}

// Resolve follows the alias chain starting at abstract and returns the first
// name that is not itself an alias. Names that are not aliases are returned
// unchanged.
//
// It returns CircularReferenceError if the chain revisits a name.
func (r *Registry) Resolve(abstract string) (string, error) {
	if _, ok := r.aliases[abstract]; !ok {
		return abstract, nil
	}

	visited := make(map[string]struct{})
	for {
		next, ok := r.aliases[abstract]
		if !ok {
			return abstract, nil
		}
		if _, seen := visited[abstract]; seen {
			return "", CircularReferenceError{Name: abstract}
		}
		visited[abstract] = struct{}{}
		abstract = next
	}
}

// RemoveAbstractAlias removes searched as an alias.
//
// Every reverse-index entry equal to searched is removed, whichever bucket it
// sits in. It is a no-op if searched is not an alias.
func (r *Registry) RemoveAbstractAlias(searched string) {
	if _, ok := r.aliases[searched]; !ok {
		return
	}

	r.removeFromBuckets(searched)
	delete(r.aliases, searched)

	r.logger.Debug().Str("alias", searched).Msg("alias removed")
}

// removeFromBuckets drops name from every bucket, keeping the order of the
// remaining entries. Emptied buckets are kept.
func (r *Registry) removeFromBuckets(name string) {
	for abstract, bucket := range r.abstractAliases {
		if !slices.Contains(bucket, name) {
			continue
		}
		r.abstractAliases[abstract] = slices.DeleteFunc(bucket, func(a string) bool { return a == name })
	}
}

// AllAliases returns the aliases registered under abstract, in registration
// order. The result is a copy and is never nil.
func (r *Registry) AllAliases(abstract string) []string {
	bucket := r.abstractAliases[abstract]
	out := make([]string, len(bucket))
	copy(out, bucket)
	return out
}

// HasAbstract reports whether abstract has at least one alias in its bucket.
func (r *Registry) HasAbstract(abstract string) bool {
	return len(r.abstractAliases[abstract]) > 0
}

// Clear removes every alias.
func (r *Registry) Clear() {
	r.aliases = make(map[string]string)
	r.abstractAliases = make(map[string][]string)

	r.logger.Debug().Msg("aliases cleared")
}

// AliasMap returns a copy of the alias -> abstract map.
func (r *Registry) AliasMap() map[string]string {
	return maps.Clone(r.aliases)
}
