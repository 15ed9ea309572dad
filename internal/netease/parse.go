package netease

import "github.com/tidwall/gjson"

// parseTrack normalizes a track object from either the legacy
// (artists/album/duration) or modern (ar/al/dt) WEAPI JSON shape. Absent
// fields yield zero values, never a warning: aliasing is a normal,
// expected variation between endpoints.
func parseTrack(v gjson.Result) Track {
	artistsField := v.Get("ar")
	if !artistsField.Exists() {
		artistsField = v.Get("artists")
	}

	albumField := v.Get("al")
	if !albumField.Exists() {
		albumField = v.Get("album")
	}

	duration := v.Get("dt")
	if !duration.Exists() {
		duration = v.Get("duration")
	}

	return Track{
		ID:         v.Get("id").Uint(),
		Name:       v.Get("name").String(),
		Artists:    parseArtists(artistsField),
		Album:      parseAlbum(albumField),
		DurationMs: duration.Uint(),
	}
}

func parseArtists(v gjson.Result) []Artist {
	arr := v.Array()
	if len(arr) == 0 {
		return nil
	}
	out := make([]Artist, 0, len(arr))
	for _, a := range arr {
		out = append(out, Artist{ID: a.Get("id").Uint(), Name: a.Get("name").String()})
	}
	return out
}

func parseAlbum(v gjson.Result) Album {
	return Album{
		ID:     v.Get("id").Uint(),
		Name:   v.Get("name").String(),
		PicURL: v.Get("picUrl").String(),
	}
}

func parseUserBrief(v gjson.Result) *UserBrief {
	if !v.Exists() || !v.IsObject() {
		return nil
	}
	return &UserBrief{ID: v.Get("userId").Uint(), Name: v.Get("nickname").String()}
}

func parsePlaylist(v gjson.Result) Playlist {
	var tracks []Track
	if arr := v.Get("tracks"); arr.Exists() {
		for _, t := range arr.Array() {
			tracks = append(tracks, parseTrack(t))
		}
	}
	return Playlist{
		ID:          v.Get("id").Uint(),
		Name:        v.Get("name").String(),
		Description: v.Get("description").String(),
		CoverURL:    v.Get("coverImgUrl").String(),
		TrackCount:  v.Get("trackCount").Uint(),
		Creator:     parseUserBrief(v.Get("creator")),
		Tracks:      tracks,
	}
}
