// Package ncm decodes NetEase Cloud Music's .ncm container format: an
// AES-ECB-protected RC4 key, optional AES-ECB-protected metadata, an
// optional cover image, and an RC4-scrambled audio payload.
package ncm

import "errors"

var (
	// ErrInvalidMagic is returned when the file does not start with the
	// "CTENFDAM" magic.
	ErrInvalidMagic = errors.New("ncm: not a valid NCM file (bad magic)")
	// ErrTruncated is returned when a length-prefixed section runs past
	// the end of the input.
	ErrTruncated = errors.New("ncm: truncated file")
	// ErrBadPadding is returned when AES-ECB PKCS#7 unpadding fails.
	ErrBadPadding = errors.New("ncm: bad PKCS#7 padding")
	// ErrBadUTF8 is returned when the decrypted metadata block is not
	// valid UTF-8 JSON.
	ErrBadUTF8 = errors.New("ncm: metadata block is not valid UTF-8")
)
