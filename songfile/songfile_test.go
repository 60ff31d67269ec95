package songfile

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/ankosk/gridline"
	"github.com/ankosk/gridline/timeline"
)

func testSong() *gridline.Song {
	return &gridline.Song{
		Patterns: map[string]gridline.Pattern{
			"bassline": {Kind: gridline.KindNote, BarCount: 4, Saved: true},
		},
		Scenes: map[string]gridline.Scene{
			"intro": {
				GlobalBarLength: 16,
				LengthInBars:    8,
				AdvanceMode:     gridline.AdvanceAuto,
				Assignments:     map[string]string{"trk1": "bassline"},
			},
		},
		Instruments: map[string]gridline.Instrument{
			"trk1": {Output: "synth A", MultiChannel: true},
		},
	}
}

func TestSongRoundTrip(t *testing.T) {
	for _, format := range []Format{YAML, JSON} {
		var buf bytes.Buffer
		song := testSong()
		if err := WriteSong(&buf, song, format); err != nil {
			t.Fatalf("WriteSong failed: %v", err)
		}
		got, err := ReadSong(&buf)
		if err != nil {
			t.Fatalf("ReadSong failed: %v", err)
		}
		if !reflect.DeepEqual(song, got) {
			t.Errorf("format %v round trip mismatch:\nwrote %#v\nread  %#v", format, song, got)
		}
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	meta := &timeline.Metadata{
		UIMappings: map[string]map[string]timeline.UIMapping{
			timeline.KindTrack: {
				"trk1": {ID: "id-1", Name: "Bass", Color: "#00ff00", Height: 48},
			},
		},
		TrackOrder: []string{"trk1"},
		SceneOrder: []string{"intro"},
	}
	for _, format := range []Format{YAML, JSON} {
		var buf bytes.Buffer
		if err := WriteMetadata(&buf, meta, format); err != nil {
			t.Fatalf("WriteMetadata failed: %v", err)
		}
		got, err := ReadMetadata(&buf)
		if err != nil {
			t.Fatalf("ReadMetadata failed: %v", err)
		}
		if !reflect.DeepEqual(meta, got) {
			t.Errorf("format %v round trip mismatch:\nwrote %#v\nread  %#v", format, meta, got)
		}
	}
}

func TestReadSongAcceptsBothEncodings(t *testing.T) {
	yamlDoc := strings.TrimSpace(`
patterns:
  arp:
    kind: step
    barCount: 2
scenes:
  chorus:
    globalBarLength: 16
    lengthInBars: 4
    advanceMode: auto
    patternAssignments:
      trk1: arp
`)
	song, err := ReadSong(strings.NewReader(yamlDoc))
	if err != nil {
		t.Fatalf("ReadSong(yaml) failed: %v", err)
	}
	if song.Patterns["arp"].BarCount != 2 {
		t.Errorf("yaml: got %#v", song.Patterns["arp"])
	}

	jsonDoc := `{"patterns":{"arp":{"kind":"step","creatorTrackNumber":0,"saved":false,"barCount":2}},"scenes":{}}`
	song, err = ReadSong(strings.NewReader(jsonDoc))
	if err != nil {
		t.Fatalf("ReadSong(json) failed: %v", err)
	}
	if song.Patterns["arp"].Kind != gridline.KindStep {
		t.Errorf("json: got %#v", song.Patterns["arp"])
	}
}

func TestReadSongRejectsGarbage(t *testing.T) {
	if _, err := ReadSong(strings.NewReader("{not: [valid")); err == nil {
		t.Error("expected an error for malformed input")
	}
}
