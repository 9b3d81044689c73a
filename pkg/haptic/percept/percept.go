// Package percept implements the perception-level translation model that
// maps the spectrum of an audio frame to the amplitudes of two fixed
// vibrotactile tones.
//
// The model works in three stages:
//
//  1. Auditory loudness and roughness are estimated from the magnitude
//     spectrum of a single analysis frame (Analyzer).
//  2. The auditory pair is mapped to target vibrotactile intensity and
//     roughness (Targets).
//  3. The targets are inverted in closed form into the amplitudes of a
//     175 Hz and a 210 Hz tone whose superposition reproduces the
//     target sensation (Amplitudes).
//
// All stages are pure functions of their inputs; no state is carried
// across frames.
package percept

import (
	"fmt"
	"strings"
)

// Content selects the model branch used for loudness estimation and the
// forward intensity mapping. Games and movies share one branch; music
// uses a bass-band loudness estimate and a linear intensity mapping.
type Content int

const (
	// ContentGame covers game and movie material (full-band loudness).
	ContentGame Content = iota
	// ContentMusic covers musical material (bass-band loudness).
	ContentMusic
)

// ParseContent parses a content-type string. "game" and "movie" map to
// ContentGame, "music" to ContentMusic.
func ParseContent(s string) (Content, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "game", "movie":
		return ContentGame, nil
	case "music":
		return ContentMusic, nil
	}
	return 0, fmt.Errorf("unknown content type %q (want game, movie or music)", s)
}

// String returns the canonical name of the content type.
func (c Content) String() string {
	switch c {
	case ContentGame:
		return "game"
	case ContentMusic:
		return "music"
	}
	return fmt.Sprintf("Content(%d)", int(c))
}
