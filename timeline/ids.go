package timeline

import "github.com/google/uuid"

// IDSource mints and remembers stable ids for native keys. EnsureID is an
// idempotent upsert: the first call for a (kind, key) pair may record a fresh
// id, every later call returns the same id. Injecting the id source keeps the
// projectors themselves pure and lets tests substitute a deterministic stub.
type IDSource interface {
	EnsureID(kind, key string) string
}

// MetadataIDs is an IDSource backed by a Metadata value: ids live in
// UIMappings and freshly minted ones are recorded there, alongside whatever
// display attributes the entity already had. This is the one place the
// projection pipeline writes anything.
type MetadataIDs struct {
	Meta *Metadata
}

func (m MetadataIDs) EnsureID(kind, key string) string {
	if m.Meta == nil {
		// Nowhere to record an id; fall back to a deterministic derived one
		// so repeated projections still agree.
		return kind + "/" + key
	}
	if m.Meta.UIMappings == nil {
		m.Meta.UIMappings = make(map[string]map[string]UIMapping)
	}
	byKey := m.Meta.UIMappings[kind]
	if byKey == nil {
		byKey = make(map[string]UIMapping)
		m.Meta.UIMappings[kind] = byKey
	}
	mapping := byKey[key]
	if mapping.ID == "" {
		mapping.ID = uuid.NewString()
		byKey[key] = mapping
	}
	return mapping.ID
}
