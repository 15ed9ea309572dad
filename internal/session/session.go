// Package session persists the NetEase MUSIC_U cookie to disk, atomically.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// FileName is the name of the persisted session file within the config
// directory.
const FileName = "session.json"

// Session is the on-disk record of a logged-in NetEase account. Any keys
// other than MUSIC_U present in the file on disk are preserved verbatim
// via extra.
type Session struct {
	MusicU string `json:"MUSIC_U"`
	extra  map[string]json.RawMessage
}

// IsLoggedIn reports whether a non-empty MUSIC_U cookie is configured.
// It does not validate the cookie against the server.
func (s Session) IsLoggedIn() bool {
	return s.MusicU != ""
}

// CookieHeader builds the Cookie header value NeteaseClient sends with
// every request, or "" if no session is configured.
func (s Session) CookieHeader() string {
	if s.MusicU == "" {
		return ""
	}
	return "os=pc; __remember_me=true; MUSIC_U=" + s.MusicU
}

// Load reads the session file at path. A missing file is not an error and
// yields a zero-value Session.
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Session{}, err
	}

	var s Session
	if v, ok := raw["MUSIC_U"]; ok {
		if err := json.Unmarshal(v, &s.MusicU); err != nil {
			return Session{}, err
		}
		delete(raw, "MUSIC_U")
	}
	s.extra = raw
	return s, nil
}

// Save writes the session file atomically: it writes to a temp file in the
// same directory, then renames over the destination, so concurrent readers
// never observe a partially-written file.
func Save(path string, s Session) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	out := make(map[string]json.RawMessage, len(s.extra)+1)
	for k, v := range s.extra {
		out[k] = v
	}
	musicU, err := json.Marshal(s.MusicU)
	if err != nil {
		return err
	}
	out["MUSIC_U"] = musicU

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".session-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// Clear removes the session file. A missing file is not an error.
func Clear(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
