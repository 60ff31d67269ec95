// Package songfile reads and writes the native song document and its
// authoring metadata. Files are JSON or YAML; reading tries JSON first and
// falls back to YAML, so the caller does not need to know which flavor a
// file is.
package songfile

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ankosk/gridline"
	"github.com/ankosk/gridline/timeline"
)

// Format selects the on-disk encoding when writing.
type Format int

const (
	YAML Format = iota
	JSON
)

// ReadSong decodes a song document from r.
func ReadSong(r io.Reader) (*gridline.Song, error) {
	var song gridline.Song
	if err := read(r, &song); err != nil {
		return nil, fmt.Errorf("songfile.ReadSong: %w", err)
	}
	return &song, nil
}

// ReadMetadata decodes authoring metadata from r.
func ReadMetadata(r io.Reader) (*timeline.Metadata, error) {
	var meta timeline.Metadata
	if err := read(r, &meta); err != nil {
		return nil, fmt.Errorf("songfile.ReadMetadata: %w", err)
	}
	return &meta, nil
}

// WriteSong encodes a song document to w in the given format.
func WriteSong(w io.Writer, song *gridline.Song, format Format) error {
	if err := write(w, song, format); err != nil {
		return fmt.Errorf("songfile.WriteSong: %w", err)
	}
	return nil
}

// WriteMetadata encodes authoring metadata to w in the given format.
func WriteMetadata(w io.Writer, meta *timeline.Metadata, format Format) error {
	if err := write(w, meta, format); err != nil {
		return fmt.Errorf("songfile.WriteMetadata: %w", err)
	}
	return nil
}

func read(r io.Reader, v any) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if errJSON := json.Unmarshal(b, v); errJSON != nil {
		if errYAML := yaml.Unmarshal(b, v); errYAML != nil {
			return fmt.Errorf("not valid as JSON (%v) nor as YAML (%v)", errJSON, errYAML)
		}
	}
	return nil
}

func write(w io.Writer, v any, format Format) error {
	var contents []byte
	var err error
	if format == JSON {
		contents, err = json.MarshalIndent(v, "", "  ")
	} else {
		contents, err = yaml.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(contents)
	return err
}
