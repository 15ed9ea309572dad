package netease

// DownloadTrack resolves a CDN URL for id at quality and streams it to
// dest, returning the number of bytes written. Returns ErrTrackUnavailable
// unchanged from TrackURL when the server has no playable source.
func (c *Client) DownloadTrack(id uint64, quality Quality, dest string) (int64, error) {
	url, err := c.TrackURL(id, quality)
	if err != nil {
		return 0, err
	}
	return c.download(url, dest)
}
