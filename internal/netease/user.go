package netease

// UserInfo returns the profile of the logged-in user. Requires a valid
// session; callers should route ErrNotLoggedIn to a re-login prompt.
func (c *Client) UserInfo() (UserProfile, error) {
	if !c.session.IsLoggedIn() {
		return UserProfile{}, ErrNotLoggedIn
	}
	resp, err := c.request("/nuser/account/get", nil)
	if err != nil {
		return UserProfile{}, err
	}
	profile := resp.Get("profile")
	return UserProfile{
		ID:        profile.Get("userId").Uint(),
		Nickname:  profile.Get("nickname").String(),
		AvatarURL: profile.Get("avatarUrl").String(),
	}, nil
}
