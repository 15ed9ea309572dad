package netease

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// TrackDetail fetches metadata for a single track by ID.
func (c *Client) TrackDetail(id uint64) (Track, error) {
	data := map[string]any{
		"c":   fmt.Sprintf(`[{"id":%d}]`, id),
		"ids": fmt.Sprintf("[%d]", id),
	}
	resp, err := c.request("/song/detail", data)
	if err != nil {
		return Track{}, err
	}
	songs := resp.Get("songs")
	if !songs.Exists() || len(songs.Array()) == 0 {
		return Track{}, fmt.Errorf("netease: track not found: %d", id)
	}
	return parseTrack(songs.Array()[0]), nil
}

// TrackURL fetches a temporary CDN playback URL at the requested quality.
// Returns ErrTrackUnavailable, not an empty success, when the server
// reports url: null (VIP-only, region-locked, or taken down).
func (c *Client) TrackURL(id uint64, quality Quality) (string, error) {
	data := map[string]any{
		"ids": fmt.Sprintf("[%d]", id),
		"br":  quality.Bitrate(),
	}
	resp, err := c.request("/song/enhance/player/url", data)
	if err != nil {
		return "", err
	}
	items := resp.Get("data").Array()
	if len(items) == 0 {
		return "", ErrTrackUnavailable
	}
	url := items[0].Get("url")
	if !url.Exists() || url.Type == gjson.Null || url.String() == "" {
		return "", ErrTrackUnavailable
	}
	return url.String(), nil
}

// TrackLyric fetches original and translated lyrics in LRC format. Either
// field may be empty for instrumental or unlyriced tracks.
func (c *Client) TrackLyric(id uint64) (Lyric, error) {
	data := map[string]any{"id": id, "lv": -1, "tv": -1}
	resp, err := c.request("/song/lyric", data)
	if err != nil {
		return Lyric{}, err
	}
	return Lyric{
		Lrc:    resp.Get("lrc.lyric").String(),
		TLyric: resp.Get("tlyric.lyric").String(),
	}, nil
}
