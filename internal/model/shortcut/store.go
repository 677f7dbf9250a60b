package shortcut

// Store exposes shortcut retrieval for HTTP handlers.
type Store interface {
	List() []Shortcut
	FindByID(id string) (Shortcut, bool)
}

// MemoryStore implements Store with an in-memory slice. Shortcuts are
// configuration data, not derived state, so a static slice suffices.
type MemoryStore struct {
	items []Shortcut
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied shortcuts.
func NewMemoryStore(items []Shortcut) *MemoryStore {
	return &MemoryStore{items: append([]Shortcut(nil), items...)}
}

// List returns the configured shortcut list.
func (s *MemoryStore) List() []Shortcut {
	return append([]Shortcut(nil), s.items...)
}

// FindByID looks up a shortcut by identifier.
func (s *MemoryStore) FindByID(id string) (Shortcut, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Shortcut{}, false
}
