package netease

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/jdxj/ncmdump/internal/session"
)

// newTestClient wires a Client at srv's URL, bypassing weapi decryption:
// the handler never decrypts params/encSecKey, it only asserts their
// presence and returns a canned response, matching how a black-box test of
// an encrypted transport has to work without the server's private key.
func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c := WithSession(session.Session{})
	c.http.SetBaseURL(srv.URL)
	return c
}

func TestSearchParsesSongResults(t *testing.T) {
	const body = `{
		"result": {
			"songCount": 2,
			"songs": [
				{"id": 1, "name": "First", "ar": [{"id": 10, "name": "Artist A"}], "al": {"id": 100, "name": "Album A"}, "dt": 200000},
				{"id": 2, "name": "Second", "artists": [{"id": 20, "name": "Artist B"}], "album": {"id": 200, "name": "Album B"}, "duration": 180000}
			]
		},
		"code": 200
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weapi/cloudsearch/get/web" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		if r.FormValue("params") == "" || r.FormValue("encSecKey") == "" {
			t.Errorf("missing encrypted form fields")
		}
		io.WriteString(w, body)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	result, err := c.Search("test", SearchTrack, 30, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("Total = %d, want 2", result.Total)
	}
	if len(result.Tracks) != 2 {
		t.Fatalf("len(Tracks) = %d, want 2", len(result.Tracks))
	}
	if result.Tracks[0].Name != "First" || result.Tracks[0].Artists[0].Name != "Artist A" {
		t.Errorf("Tracks[0] not parsed correctly: %+v", result.Tracks[0])
	}
	if result.Tracks[1].Name != "Second" || result.Tracks[1].Album.Name != "Album B" {
		t.Errorf("Tracks[1] (legacy alias) not parsed correctly: %+v", result.Tracks[1])
	}
	if result.Tracks[1].DurationMs != 180000 {
		t.Errorf("Tracks[1].DurationMs = %d, want 180000", result.Tracks[1].DurationMs)
	}
}

func TestTrackURLReturnsErrTrackUnavailableOnNullURL(t *testing.T) {
	const body = `{"data": [{"id": 1, "url": null, "code": 404}], "code": 200}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.TrackURL(1, QualityStandard)
	if err != ErrTrackUnavailable {
		t.Fatalf("err = %v, want ErrTrackUnavailable", err)
	}
}

func TestTrackURLReturnsURLWhenPresent(t *testing.T) {
	const body = `{"data": [{"id": 1, "url": "https://example.com/song.mp3", "code": 200}], "code": 200}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	url, err := c.TrackURL(1, QualityExhigh)
	if err != nil {
		t.Fatalf("TrackURL: %v", err)
	}
	if url != "https://example.com/song.mp3" {
		t.Fatalf("url = %q", url)
	}
}

func TestRequestMapsAPIErrorCodes(t *testing.T) {
	tests := []struct {
		code int64
		want error
	}{
		{301, ErrNotLoggedIn},
		{-460, ErrRateLimited},
		{403, ErrForbidden},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"code": `+strconv.FormatInt(tt.code, 10)+`, "message": "denied"}`)
		}))
		c := newTestClient(t, srv)
		_, err := c.request("/song/detail", map[string]any{"ids": "[1]"})
		if err == nil {
			t.Fatalf("code %d: expected error", tt.code)
		}
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("code %d: err is not *APIError: %v", tt.code, err)
		}
		if !apiErr.Is(tt.want) {
			t.Errorf("code %d: Is(%v) = false, want true", tt.code, tt.want)
		}
		srv.Close()
	}
}

func TestUserInfoRequiresSession(t *testing.T) {
	c := WithSession(session.Session{})
	_, err := c.UserInfo()
	if err != ErrNotLoggedIn {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}
}

func TestUserInfoRequestsExpectedPath(t *testing.T) {
	const body = `{"profile": {"userId": 7, "nickname": "someone", "avatarUrl": "https://example.com/a.jpg"}, "code": 200}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weapi/nuser/account/get" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		io.WriteString(w, body)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	c.session = session.Session{MusicU: "cookie"}
	profile, err := c.UserInfo()
	if err != nil {
		t.Fatalf("UserInfo: %v", err)
	}
	if profile.Nickname != "someone" {
		t.Fatalf("profile = %+v", profile)
	}
}

func TestTrackDetailNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"songs": [], "code": 200}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.TrackDetail(999)
	if err == nil {
		t.Fatalf("expected error for empty songs array")
	}
}

func TestPlaylistDetailParsesTracks(t *testing.T) {
	const body = `{
		"playlist": {
			"id": 5,
			"name": "My List",
			"trackCount": 1,
			"creator": {"userId": 42, "nickname": "me"},
			"tracks": [{"id": 1, "name": "Only Track", "ar": [], "al": {}, "dt": 1000}]
		},
		"code": 200
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	pl, err := c.PlaylistDetail(5)
	if err != nil {
		t.Fatalf("PlaylistDetail: %v", err)
	}
	if pl.Name != "My List" || len(pl.Tracks) != 1 {
		t.Fatalf("pl = %+v", pl)
	}
	if pl.Creator == nil || pl.Creator.Name != "me" {
		t.Fatalf("pl.Creator = %+v", pl.Creator)
	}
}
