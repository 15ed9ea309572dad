package main

import (
	"errors"
	"strconv"

	"github.com/jdxj/ncmdump/internal/netease"
)

// apiExitErr classifies a netease error into the auth or network exit
// code: ErrNotLoggedIn/ErrForbidden are authentication failures,
// everything else (rate limiting, transport errors, unexpected API
// codes) is a network/API error.
func apiExitErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, netease.ErrNotLoggedIn) || errors.Is(err, netease.ErrForbidden) {
		return exitErr(exitAuth, err)
	}
	return exitErr(exitNetwork, err)
}

func parseTrackID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.New("invalid track id: " + s)
	}
	return id, nil
}
