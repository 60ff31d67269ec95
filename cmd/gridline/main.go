package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ankosk/gridline"
	"github.com/ankosk/gridline/smfexport"
	"github.com/ankosk/gridline/songfile"
	"github.com/ankosk/gridline/timeline"
	"github.com/ankosk/gridline/version"
)

func main() {
	metaPath := flag.String("meta", "", "Authoring metadata file (.yml or .json). Without it, tracks and scenes get default order and attributes.")
	midPath := flag.String("mid", "", "Export the projected timeline to this Standard MIDI File.")
	tempo := flag.Float64("tempo", 120, "Tempo in BPM for MIDI export.")
	includeMuted := flag.Bool("muted", false, "Include muted pattern instances in MIDI export.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	songFile, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("opening song: %v", err)
	}
	defer songFile.Close()
	song, err := songfile.ReadSong(songFile)
	if err != nil {
		log.Fatalf("reading song: %v", err)
	}
	if err := song.Validate(); err != nil {
		log.Printf("warning: %v", err)
	}

	meta := &timeline.Metadata{}
	if *metaPath != "" {
		metaFile, err := os.Open(*metaPath)
		if err != nil {
			log.Fatalf("opening metadata: %v", err)
		}
		defer metaFile.Close()
		if meta, err = songfile.ReadMetadata(metaFile); err != nil {
			log.Fatalf("reading metadata: %v", err)
		}
	}

	tl := timeline.Project(song, meta, nil, gridline.DefaultTimeUnitsPerBar)
	printTimeline(tl)

	if *midPath != "" {
		out, err := os.Create(*midPath)
		if err != nil {
			log.Fatalf("creating %v: %v", *midPath, err)
		}
		opts := smfexport.Options{Tempo: *tempo, IncludeMuted: *includeMuted}
		if err := smfexport.Write(out, tl, opts); err != nil {
			log.Fatalf("exporting MIDI: %v", err)
		}
		if err := out.Close(); err != nil {
			log.Fatalf("closing %v: %v", *midPath, err)
		}
		fmt.Printf("wrote %v\n", *midPath)
	}
}

func printTimeline(tl timeline.Timeline) {
	fmt.Printf("%d scenes, %d tracks, %d pattern instances, %g time units total\n",
		len(tl.Scenes), len(tl.Tracks), len(tl.Patterns), tl.Length())
	for _, scene := range tl.Scenes {
		fmt.Printf("scene %-16q start %8g dur %6g (%d bars of %d steps, %s)\n",
			scene.Name, scene.Start, scene.Duration, scene.LengthInBars, scene.GlobalBarLength, scene.AdvanceMode)
	}
	for _, track := range tl.Tracks {
		fmt.Printf("track %-16q color %v\n", track.Name, track.Color)
		for _, p := range tl.Patterns {
			if p.TrackID != track.ID {
				continue
			}
			muted := ""
			if p.Muted {
				muted = " (muted)"
			}
			fmt.Printf("  %8g .. %-8g %v [%v]%v\n", p.Start, p.Start+p.Duration, p.Label, p.Kind, muted)
		}
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "usage: gridline [flags] <songfile>\n\nProjects a song document onto a timeline and prints it.\n\n")
	flag.PrintDefaults()
}
