package timeline

type (
	// Metadata is the authoring-side companion of the native document: the
	// user-intended display order of tracks and scenes, plus per-entity
	// display attributes keyed by native key. It may lag behind the document
	// in both directions; projection tolerates missing and dangling entries.
	Metadata struct {
		// UIMappings maps an entity kind (KindTrack, KindScene, KindPattern)
		// to a mapping from native key to display attributes.
		UIMappings map[string]map[string]UIMapping `yaml:"uiMappings,omitempty" json:"uiMappings,omitempty"`

		TrackOrder []string `yaml:"trackOrder,omitempty,flow" json:"trackOrder,omitempty"`
		SceneOrder []string `yaml:"sceneOrder,omitempty,flow" json:"sceneOrder,omitempty"`
	}

	// UIMapping holds the stable id and display attributes of one entity.
	// The zero value means "never seen": no id minted, all defaults.
	UIMapping struct {
		ID        string `yaml:"stableId" json:"stableId"`
		Name      string `yaml:"name,omitempty" json:"name,omitempty"`
		Color     string `yaml:"color,omitempty" json:"color,omitempty"`
		Height    int    `yaml:"height,omitempty" json:"height,omitempty"`
		Collapsed bool   `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
		Transpose bool   `yaml:"transpose,omitempty" json:"transpose,omitempty"`
	}
)

// Entity kinds within Metadata.UIMappings.
const (
	KindTrack   = "tracks"
	KindScene   = "scenes"
	KindPattern = "patterns"
)

// Mapping returns the display attributes of the given entity, reporting
// whether any were stored. Safe on a nil receiver.
func (m *Metadata) Mapping(kind, key string) (UIMapping, bool) {
	if m == nil {
		return UIMapping{}, false
	}
	mapping, ok := m.UIMappings[kind][key]
	return mapping, ok
}

// Copy makes a deep copy of a Metadata.
func (m *Metadata) Copy() Metadata {
	mappings := make(map[string]map[string]UIMapping, len(m.UIMappings))
	for kind, byKey := range m.UIMappings {
		inner := make(map[string]UIMapping, len(byKey))
		for k, v := range byKey {
			inner[k] = v
		}
		mappings[kind] = inner
	}
	trackOrder := make([]string, len(m.TrackOrder))
	copy(trackOrder, m.TrackOrder)
	sceneOrder := make([]string, len(m.SceneOrder))
	copy(sceneOrder, m.SceneOrder)
	return Metadata{UIMappings: mappings, TrackOrder: trackOrder, SceneOrder: sceneOrder}
}
