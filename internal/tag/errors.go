// Package tag rewrites metadata tags into decrypted audio files: ID3v2.3
// for MP3, Vorbis comments + PICTURE block for FLAC.
package tag

import "errors"

var (
	// ErrUnknownFormat is returned when the file's leading bytes match
	// neither the MP3 nor the FLAC signature.
	ErrUnknownFormat = errors.New("tag: unknown audio format")
	// ErrTagParse is returned when an existing tag in the file is
	// malformed. Callers should treat this as non-fatal: the decrypted
	// audio is still usable, only its tags could not be rewritten.
	ErrTagParse = errors.New("tag: failed to parse existing tags")
)
