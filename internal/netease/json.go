package netease

import "encoding/json"

// marshalJSON renders data as compact JSON text. Panics only on
// programmer error (a value this package builds itself that isn't
// marshalable), rather than threading an error through every
// request-body constructor.
func marshalJSON(data any) string {
	b, err := json.Marshal(data)
	if err != nil {
		panic("netease: request payload not marshalable: " + err.Error())
	}
	return string(b)
}
