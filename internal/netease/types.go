// Package netease is an authenticated client for the NetEase Cloud Music
// web API (WEAPI): search, track detail/URL/lyric, playlist, user profile,
// and download.
package netease

// Artist is a performing artist.
type Artist struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Album is a release an track belongs to.
type Album struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	PicURL string `json:"picUrl,omitempty"`
}

// Track is a single song, with fields normalized regardless of whether the
// endpoint used the legacy (artists/album/duration) or modern (ar/al/dt)
// JSON aliases.
type Track struct {
	ID         uint64   `json:"id"`
	Name       string   `json:"name"`
	Artists    []Artist `json:"artists"`
	Album      Album    `json:"album"`
	DurationMs uint64   `json:"durationMs"`
}

// UserBrief is the abbreviated user info embedded in a Playlist.
type UserBrief struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Playlist is a song list, with Tracks populated only by PlaylistDetail.
type Playlist struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CoverURL    string     `json:"coverUrl,omitempty"`
	TrackCount  uint64     `json:"trackCount"`
	Creator     *UserBrief `json:"creator,omitempty"`
	Tracks      []Track    `json:"tracks,omitempty"`
}

// UserProfile is the current logged-in user's public profile.
type UserProfile struct {
	ID        uint64 `json:"id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Lyric holds LRC-formatted lyrics; either field may be empty for
// instrumental tracks or tracks without uploaded lyrics.
type Lyric struct {
	Lrc    string `json:"lrc,omitempty"`
	TLyric string `json:"tlyric,omitempty"`
}

// SearchResult holds exactly one populated slice, matching the SearchType
// the query used.
type SearchResult struct {
	Total     uint64     `json:"total"`
	Offset    uint64     `json:"offset"`
	Limit     uint64     `json:"limit"`
	Tracks    []Track    `json:"tracks,omitempty"`
	Albums    []Album    `json:"albums,omitempty"`
	Playlists []Playlist `json:"playlists,omitempty"`
	Artists   []Artist   `json:"artists,omitempty"`
}

// SearchType selects what a Search call matches against; the numeric
// value is the literal WEAPI "type" parameter.
type SearchType int

const (
	SearchTrack    SearchType = 1
	SearchAlbum    SearchType = 10
	SearchArtist   SearchType = 100
	SearchPlaylist SearchType = 1000
)

// Quality is a requested playback bitrate tier.
type Quality int

const (
	QualityStandard Quality = iota
	QualityHigher
	QualityExhigh
	QualityLossless
)

// Bitrate returns the "br" value sent to track_url for q.
func (q Quality) Bitrate() int {
	switch q {
	case QualityHigher:
		return 192_000
	case QualityExhigh:
		return 320_000
	case QualityLossless:
		return 999_000
	default:
		return 128_000
	}
}

// ParseQuality maps a CLI-facing quality name to a Quality, defaulting to
// QualityStandard on no match.
func ParseQuality(s string) Quality {
	switch s {
	case "higher":
		return QualityHigher
	case "exhigh":
		return QualityExhigh
	case "lossless":
		return QualityLossless
	default:
		return QualityStandard
	}
}
