package tag

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

func writeTempMP3(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.mp3")
	// Frame-synced MP3 body with no pre-existing ID3 tag.
	body := append([]byte{0xFF, 0xFB, 0x90, 0x00}, bytes.Repeat([]byte{0x00}, 512)...)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWriteMP3EmbedsCoverAndTags(t *testing.T) {
	path := writeTempMP3(t)
	cover := &Cover{Data: append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x01}, 96)...), MimeType: "image/jpeg"}

	if err := Write(path, Input{Title: "Song", Artist: "A/B", Album: "Album"}, cover); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	if f.Title() != "Song" || f.Artist() != "A/B" || f.Album() != "Album" {
		t.Fatalf("unexpected tags: %q %q %q", f.Title(), f.Artist(), f.Album())
	}

	pics := f.GetFrames(f.CommonID("Attached picture"))
	if len(pics) != 1 {
		t.Fatalf("expected exactly one APIC frame, got %d", len(pics))
	}
	pic, ok := pics[0].(id3v2.PictureFrame)
	if !ok {
		t.Fatal("APIC frame has unexpected type")
	}
	if !bytes.Equal(pic.Picture, cover.Data) {
		t.Fatal("embedded picture bytes mismatch")
	}
}

func TestWriteMP3TwiceIsIdempotent(t *testing.T) {
	path := writeTempMP3(t)
	cover := &Cover{Data: []byte{0xFF, 0xD8, 0xFF, 0xE0, 1, 2, 3}, MimeType: "image/jpeg"}
	input := Input{Title: "Song", Artist: "A", Album: "Album"}

	if err := Write(path, input, cover); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := Write(path, input, cover); err != nil {
		t.Fatalf("second write: %v", err)
	}

	f, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	pics := f.GetFrames(f.CommonID("Attached picture"))
	if len(pics) != 1 {
		t.Fatalf("expected exactly one APIC frame after two writes, got %d", len(pics))
	}
}

func TestWriteMP3StripsPreexistingFrames(t *testing.T) {
	path := writeTempMP3(t)

	pre, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("open for pre-tagging: %v", err)
	}
	pre.AddTextFrame(pre.CommonID("Track number/Position in set"), id3v2.EncodingUTF8, "3")
	pre.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: "",
		Text:        "leftover comment",
	})
	if err := pre.Save(); err != nil {
		t.Fatalf("pre-tag save: %v", err)
	}

	if err := Write(path, Input{Title: "Song", Artist: "A", Album: "Album"}, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	if f.Title() != "Song" {
		t.Fatalf("Title = %q, want %q", f.Title(), "Song")
	}
	if len(f.GetFrames(f.CommonID("Track number/Position in set"))) != 0 {
		t.Fatal("expected TRCK frame to be stripped")
	}
	if len(f.GetFrames(f.CommonID("Comments"))) != 0 {
		t.Fatal("expected COMM frame to be stripped")
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.bin")
	if err := os.WriteFile(path, []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Write(path, Input{}, nil); err == nil {
		t.Fatal("expected ErrUnknownFormat")
	}
}
