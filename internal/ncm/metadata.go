package ncm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Metadata is the JSON blob embedded in an NCM file's metadata section.
// Alias/TransNames are kept as raw passthrough since no known sample
// populates them.
type Metadata struct {
	Format        string          `json:"format"`
	MusicID       int             `json:"musicId"`
	MusicName     string          `json:"musicName"`
	Artist        [][]interface{} `json:"artist"`
	Album         string          `json:"album"`
	AlbumID       int             `json:"albumId"`
	AlbumPicDocID uint64          `json:"albumPicDocId"`
	AlbumPic      string          `json:"albumPic"`
	MVID          int             `json:"mvId"`
	Flag          int             `json:"flag"`
	Bitrate       int             `json:"bitrate"`
	Duration      int             `json:"duration"`
	Alias         json.RawMessage `json:"alias,omitempty"`
	TransNames    json.RawMessage `json:"transNames,omitempty"`
}

// MustFormat returns the container format, defaulting to "mp3" when m is
// nil (an NCM file with no embedded metadata still needs an extension).
func (m *Metadata) MustFormat() string {
	if m == nil || m.Format == "" {
		return "mp3"
	}
	return m.Format
}

// MustArtist joins every artist name with "/", tolerating a nil receiver.
func (m *Metadata) MustArtist() string {
	if m == nil {
		return ""
	}
	names := make([]string, 0, len(m.Artist))
	for _, pair := range m.Artist {
		if len(pair) == 0 {
			continue
		}
		if name, ok := pair[0].(string); ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("%v", pair[0]))
		}
	}
	return strings.Join(names, "/")
}

// MustMusicName tolerates a nil receiver.
func (m *Metadata) MustMusicName() string {
	if m == nil {
		return ""
	}
	return m.MusicName
}

// MustAlbum tolerates a nil receiver.
func (m *Metadata) MustAlbum() string {
	if m == nil {
		return ""
	}
	return m.Album
}

// parseMetadata decodes the "music:"-prefixed JSON left after AES-ECB
// decryption of the metadata block.
func parseMetadata(data []byte) (*Metadata, error) {
	const marker = "music:"
	data = bytes.TrimPrefix(data, []byte(marker))
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, fmt.Errorf("%w: metadata does not start with '{'", ErrBadUTF8)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadUTF8, err)
	}
	return &meta, nil
}

// pngMagic is the 8-byte PNG signature.
var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Cover is the embedded album art, with MIME type inferred from the
// leading bytes: a PNG signature means image/png, anything else with
// cover bytes is treated as JPEG.
type Cover struct {
	Data     []byte
	MimeType string
}

func newCover(data []byte) *Cover {
	if len(data) == 0 {
		return nil
	}
	mime := "image/jpeg"
	if len(data) >= len(pngMagic) && bytes.Equal(data[:len(pngMagic)], pngMagic) {
		mime = "image/png"
	}
	return &Cover{Data: data, MimeType: mime}
}
