package ncm

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
)

// magic is the fixed 8-byte NCM container signature ("CTENFDAM").
var magic = []byte{0x43, 0x54, 0x45, 0x4E, 0x46, 0x44, 0x41, 0x4D}

// AudioChunkSize is the recommended XOR chunk size for the audio stream.
const AudioChunkSize = 0x8000

// File is a parsed NCM container, positioned at the start of its audio
// section. Call Audio to obtain the decrypted audio stream; a File holds
// mutable position state and must not be shared across goroutines.
type File struct {
	Metadata *Metadata
	Cover    *Cover

	keyBox [rc4SBoxSize]byte
	src    io.Reader
	offset int
}

// Open validates the magic, recovers the RC4 key box, and decodes the
// metadata and cover sections, leaving r positioned at the start of the
// audio ciphertext. The returned File's Audio reader must be fully
// consumed (or discarded) before r is reused.
func Open(r io.Reader) (*File, error) {
	br := bufio.NewReaderSize(r, 1<<20)

	hdr := make([]byte, len(magic))
	if _, err := io.ReadFull(br, hdr); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMagic, err)
	}
	if !bytes.Equal(hdr, magic) {
		return nil, ErrInvalidMagic
	}

	if _, err := br.Discard(2); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTruncated, err)
	}

	keyBox, err := readKeyBox(br)
	if err != nil {
		return nil, err
	}

	meta, err := readMetadata(br)
	if err != nil {
		return nil, err
	}

	// 4-byte CRC32 + 5 reserved bytes; validity is unspecified, skip.
	if _, err := br.Discard(9); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTruncated, err)
	}

	cover, err := readCover(br)
	if err != nil {
		return nil, err
	}

	return &File{
		Metadata: meta,
		Cover:    cover,
		keyBox:   keyBox,
		src:      br,
	}, nil
}

func readLengthPrefixed(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTruncated, err)
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTruncated, err)
		}
	}
	return buf, nil
}

func readKeyBox(r io.Reader) ([rc4SBoxSize]byte, error) {
	var keyBox [rc4SBoxSize]byte

	data, err := readLengthPrefixed(r)
	if err != nil {
		return keyBox, err
	}
	for i := range data {
		data[i] ^= 0x64
	}
	plain, err := aesECBDecrypt(coreKey, data)
	if err != nil {
		return keyBox, err
	}
	// Strip the "neteasecloudmusic" marker (17 bytes).
	const markerLen = 17
	if len(plain) <= markerLen {
		return keyBox, fmt.Errorf("%w: rc4 key too short", ErrTruncated)
	}
	rc4Key := plain[markerLen:]
	return rc4KeyBox(rc4Key), nil
}

func readMetadata(r io.Reader) (*Metadata, error) {
	data, err := readLengthPrefixed(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	const markerLen = 22 // "163 key(Don't modify):"
	if len(data) <= markerLen {
		return nil, fmt.Errorf("%w: metadata block too short", ErrTruncated)
	}
	for i := range data {
		data[i] ^= 0x63
	}

	decoded, err := base64.StdEncoding.DecodeString(string(data[markerLen:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadUTF8, err)
	}
	plain, err := aesECBDecrypt(metaKey, decoded)
	if err != nil {
		return nil, err
	}
	return parseMetadata(plain)
}

func readCover(r io.Reader) (*Cover, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTruncated, err)
	}
	frameLen := binary.LittleEndian.Uint32(lenBuf[:])

	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTruncated, err)
	}
	imageLen := binary.LittleEndian.Uint32(lenBuf[:])

	var img []byte
	if imageLen > 0 {
		img = make([]byte, imageLen)
		if _, err := io.ReadFull(r, img); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTruncated, err)
		}
	}

	if pad := int64(frameLen) - int64(imageLen); pad > 0 {
		if _, err := io.CopyN(io.Discard, r, pad); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTruncated, err)
		}
	}
	return newCover(img), nil
}

// Audio returns an io.Reader yielding the decrypted audio payload. It must
// be read to completion (or abandoned along with the File) exactly once.
func (f *File) Audio() io.Reader {
	return &audioReader{file: f}
}

type audioReader struct {
	file *File
}

func (a *audioReader) Read(p []byte) (int, error) {
	n, err := a.file.src.Read(p)
	for i := 0; i < n; i++ {
		p[i] ^= keystreamByte(&a.file.keyBox, a.file.offset+i)
	}
	a.file.offset += n
	return n, err
}

// Sniff inspects the first bytes of decrypted audio to classify the
// container. It does not consume r; callers normally pass a bytes.Reader
// wrapping a small peeked prefix.
func Sniff(prefix []byte) Format {
	switch {
	case len(prefix) >= 3 && bytes.Equal(prefix[:3], []byte("ID3")):
		return FormatMP3
	case len(prefix) >= 2 && prefix[0] == 0xFF && (prefix[1] == 0xFB || prefix[1] == 0xF3 || prefix[1] == 0xF2):
		return FormatMP3
	case len(prefix) >= 4 && bytes.Equal(prefix[:4], []byte("fLaC")):
		return FormatFLAC
	default:
		return FormatUnknown
	}
}

// Format is the sniffed (or metadata-declared) audio container kind.
type Format int

const (
	FormatUnknown Format = iota
	FormatMP3
	FormatFLAC
)

// Extension returns the canonical file extension for f, defaulting to mp3.
func (f Format) Extension() string {
	switch f {
	case FormatFLAC:
		return "flac"
	default:
		return "mp3"
	}
}
