package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankosk/gridline"
	"github.com/ankosk/gridline/timeline"
)

func TestProjectTimelineLength(t *testing.T) {
	tl := project(testSong(), testMetadata())
	assert.Equal(t, 48.0, tl.Length())
	assert.Equal(t, 0.0, timeline.Timeline{}.Length())
}

func TestProjectWithMetadataIDsIsRepeatable(t *testing.T) {
	song := testSong()
	meta := testMetadata()
	// The first projection mints ids into the metadata; the second run sees
	// them there and must agree with the first completely.
	first := timeline.Project(song, meta, nil, 0)
	second := timeline.Project(song, meta, nil, 0)
	require.Equal(t, first, second)
	assert.NotEmpty(t, first.Scenes[0].ID)
}

func TestProjectDegradedInputs(t *testing.T) {
	// Everything optional missing: still a usable, empty-but-valid result.
	tl := timeline.Project(nil, nil, nil, 0)
	assert.Empty(t, tl.Scenes)
	assert.Empty(t, tl.Tracks)
	assert.Empty(t, tl.Patterns)

	// A song with no metadata at all projects deterministically.
	song := testSong()
	first := timeline.Project(song, nil, stubIDs{}, gridline.DefaultTimeUnitsPerBar)
	second := timeline.Project(song, nil, stubIDs{}, gridline.DefaultTimeUnitsPerBar)
	require.Equal(t, first, second)
	assert.Len(t, first.Scenes, 2)
	assert.Len(t, first.Tracks, 2)
}
