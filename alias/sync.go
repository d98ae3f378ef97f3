package alias

import "sync"

// SyncRegistry is a Registry guarded by a RWMutex.
type SyncRegistry struct {
	mu  sync.RWMutex
	reg *Registry
}

var _ Interface = (*SyncRegistry)(nil)

// NewSync returns an empty SyncRegistry.
func NewSync(opts ...Option) *SyncRegistry {
	return &SyncRegistry{reg: New(opts...)}
}

// IsAlias is Registry.IsAlias under a read lock.
func (s *SyncRegistry) IsAlias(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.IsAlias(name)
}

// Alias is Registry.Alias under the write lock.
func (s *SyncRegistry) Alias(abstract, alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Alias(abstract, alias)
}

// AliasReverse is Alias with the arguments swapped.
func (s *SyncRegistry) AliasReverse(alias, abstract string) error {
	return s.Alias(abstract, alias)
}

// RegisterAll registers entries in order under a single lock.
func (s *SyncRegistry) RegisterAll(entries ...Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.RegisterAll(entries...)
}

// Resolve is Registry.Resolve under a read lock.
func (s *SyncRegistry) Resolve(abstract string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Resolve(abstract)
}

// RemoveAbstractAlias is Registry.RemoveAbstractAlias under the write lock.
func (s *SyncRegistry) RemoveAbstractAlias(searched string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.RemoveAbstractAlias(searched)
}

// AllAliases is Registry.AllAliases under a read lock.
func (s *SyncRegistry) AllAliases(abstract string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.AllAliases(abstract)
}

// HasAbstract is Registry.HasAbstract under a read lock.
func (s *SyncRegistry) HasAbstract(abstract string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.HasAbstract(abstract)
}

// Clear is Registry.Clear under the write lock.
func (s *SyncRegistry) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.Clear()
}

// AliasMap is Registry.AliasMap under a read lock.
func (s *SyncRegistry) AliasMap() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.AliasMap()
}
