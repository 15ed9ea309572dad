package netease

// Search queries "/cloudsearch/get/web" and returns a SearchResult with
// exactly the field matching searchType populated.
func (c *Client) Search(keyword string, searchType SearchType, limit, offset uint64) (SearchResult, error) {
	data := map[string]any{
		"s":      keyword,
		"type":   int(searchType),
		"limit":  limit,
		"offset": offset,
	}
	resp, err := c.request("/cloudsearch/get/web", data)
	if err != nil {
		return SearchResult{}, err
	}

	result := resp.Get("result")
	sr := SearchResult{Offset: offset, Limit: limit}

	switch searchType {
	case SearchTrack:
		sr.Total = result.Get("songCount").Uint()
		for _, v := range result.Get("songs").Array() {
			sr.Tracks = append(sr.Tracks, parseTrack(v))
		}
	case SearchAlbum:
		sr.Total = result.Get("albumCount").Uint()
		for _, v := range result.Get("albums").Array() {
			sr.Albums = append(sr.Albums, parseAlbum(v))
		}
	case SearchArtist:
		sr.Total = result.Get("artistCount").Uint()
		for _, v := range result.Get("artists").Array() {
			sr.Artists = append(sr.Artists, Artist{ID: v.Get("id").Uint(), Name: v.Get("name").String()})
		}
	case SearchPlaylist:
		sr.Total = result.Get("playlistCount").Uint()
		for _, v := range result.Get("playlists").Array() {
			sr.Playlists = append(sr.Playlists, parsePlaylist(v))
		}
	}

	return sr, nil
}
