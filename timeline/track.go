package timeline

import (
	"fmt"

	"github.com/ankosk/gridline"
)

// DefaultTrackColor is the color of a track that has no stored display
// attributes.
const DefaultTrackColor = "#6b7280"

// ProjectTracks derives the ordered track view models of a song. The track
// key universe is the union of the authored track order and every key
// referenced anywhere in the song, so a track that only exists as a scene
// assignment still gets a row. Display attributes come from the metadata
// with deterministic defaults: an unnamed track is titled by its ordinal.
func ProjectTracks(song *gridline.Song, meta *Metadata, ids IDSource) []Track {
	if song == nil {
		return nil
	}
	if ids == nil {
		ids = MetadataIDs{Meta: meta}
	}
	universe := song.TrackKeys()
	var trackOrder []string
	if meta != nil {
		trackOrder = meta.TrackOrder
		for _, key := range meta.TrackOrder {
			universe[key] = struct{}{}
		}
	}
	order := gridline.ResolveOrder(universe, trackOrder)
	tracks := make([]Track, 0, len(order))
	for i, key := range order {
		mapping, _ := meta.Mapping(KindTrack, key)
		track := Track{
			ID:        ids.EnsureID(KindTrack, key),
			Name:      mapping.Name,
			Color:     mapping.Color,
			Collapsed: mapping.Collapsed,
		}
		if track.Name == "" {
			track.Name = fmt.Sprintf("Track %d", i+1)
		}
		if track.Color == "" {
			track.Color = DefaultTrackColor
		}
		if mapping.Height > 0 {
			track.Height = NewOptionalIntegerOf(mapping.Height)
		}
		tracks = append(tracks, track)
	}
	return tracks
}
