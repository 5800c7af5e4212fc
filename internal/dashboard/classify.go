package dashboard

import "strings"

// State is the canonical outcome for every binary subsystem.
type State int

const (
	Inactive State = iota
	Active
)

// Classify maps a raw status string to a binary state. The producers are
// inconsistent about encodings, so both "1" and any casing of "true" count as
// active; everything else, including a missing value, is inactive. This is
// the only implementation of the predicate - meters, ambient sensors and both
// interlock channels all go through here.
func Classify(raw *string) State {
	if raw == nil {
		return Inactive
	}
	if *raw == "1" || strings.EqualFold(*raw, "true") {
		return Active
	}
	return Inactive
}

// ClassifyFlag is the integer twin of Classify for the 0/1 flags
// (emergency call, door, intercom, laser).
func ClassifyFlag(raw *int) State {
	if raw != nil && *raw == 1 {
		return Active
	}
	return Inactive
}

// SoundLevel is a closed enumeration, not a boolean: level 0 means the audio
// channel itself is down, which the board shows differently from "off".
type SoundLevel int

const (
	SoundDown SoundLevel = iota
	SoundOff
	SoundLevel1
	SoundLevel2
	SoundLevel3
	SoundLevel4
)

// ClassifySound maps the raw 0..5 code directly onto the enumeration.
// Anything out of range or missing degrades to SoundDown.
func ClassifySound(code *int) SoundLevel {
	if code == nil {
		return SoundDown
	}
	switch *code {
	case 0:
		return SoundDown
	case 1:
		return SoundOff
	case 2:
		return SoundLevel1
	case 3:
		return SoundLevel2
	case 4:
		return SoundLevel3
	case 5:
		return SoundLevel4
	default:
		return SoundDown
	}
}
