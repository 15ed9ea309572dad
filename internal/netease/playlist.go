package netease

import "fmt"

// PlaylistDetail fetches a playlist and its full track list. n=100000 asks
// the server for every track in one call rather than paginating: playlists
// rarely exceed that size and the server caps the response regardless.
func (c *Client) PlaylistDetail(id uint64) (Playlist, error) {
	data := map[string]any{
		"id": id,
		"n":  100000,
	}
	resp, err := c.request("/v6/playlist/detail", data)
	if err != nil {
		return Playlist{}, err
	}
	pl := resp.Get("playlist")
	if !pl.Exists() {
		return Playlist{}, fmt.Errorf("netease: playlist not found: %d", id)
	}
	return parsePlaylist(pl), nil
}
