// Command ncmdumpffi exposes the NCM decrypt/tag pipeline as a C ABI,
// built with `go build -buildmode=c-archive`, for embedding in non-Go
// callers. The handle lifecycle is create/dump/fix/destroy; the opaque
// handle is a runtime/cgo.Handle rather than a raw pointer, since a Go
// value holding live references can't be handed across the cgo boundary
// as a bare pointer.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"io"
	"os"
	"path/filepath"
	"runtime/cgo"
	"strings"
	"unsafe"

	"github.com/jdxj/ncmdump/internal/ncm"
	"github.com/jdxj/ncmdump/internal/tag"
)

// neteaseCrypt holds the source path, the file handle kept open across
// the Create/Dump/Destroy lifecycle, the parsed NCM container, and the
// output path once Dump has run.
type neteaseCrypt struct {
	path     string
	file     *os.File
	ncmFile  *ncm.File
	dumpPath string
}

// CreateNeteaseCrypt opens path and parses the NCM header, returning null
// on any failure (bad path, not an NCM file, truncated header).
//
//export CreateNeteaseCrypt
func CreateNeteaseCrypt(cPath *C.char) unsafe.Pointer {
	if cPath == nil {
		return nil
	}
	path := C.GoString(cPath)

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	nf, err := ncm.Open(f)
	if err != nil {
		f.Close()
		return nil
	}

	nc := &neteaseCrypt{path: path, file: f, ncmFile: nf}
	h := cgo.NewHandle(nc)
	return unsafe.Pointer(uintptr(h))
}

// Dump decrypts the audio payload to outputPath (or, if null, the source
// file's own directory), recording the written path for a later
// FixMetadata call. Returns 0 on success, 1 on any failure.
//
//export Dump
func Dump(handle unsafe.Pointer, outputPath *C.char) C.int {
	nc := lookup(handle)
	if nc == nil {
		return 1
	}

	outDir := filepath.Dir(nc.path)
	if outputPath != nil {
		outDir = C.GoString(outputPath)
	}
	stem := strings.TrimSuffix(filepath.Base(nc.path), filepath.Ext(nc.path))
	dumpPath := filepath.Join(outDir, stem+"."+nc.ncmFile.Metadata.MustFormat())

	out, err := os.Create(dumpPath)
	if err != nil {
		return 1
	}
	defer out.Close()

	if _, err := io.Copy(out, nc.ncmFile.Audio()); err != nil {
		return 1
	}
	nc.dumpPath = dumpPath
	return 0
}

// FixMetadata embeds title/artist/album and cover art into the file Dump
// already wrote. A no-op if Dump was never called, or if the container had
// no embedded metadata; tag errors are swallowed since the untagged audio
// on disk is still valid.
//
//export FixMetadata
func FixMetadata(handle unsafe.Pointer) {
	nc := lookup(handle)
	if nc == nil || nc.dumpPath == "" {
		return
	}

	var cover *tag.Cover
	if nc.ncmFile.Cover != nil {
		cover = &tag.Cover{Data: nc.ncmFile.Cover.Data, MimeType: nc.ncmFile.Cover.MimeType}
	}
	input := tag.Input{
		Title:  nc.ncmFile.Metadata.MustMusicName(),
		Artist: nc.ncmFile.Metadata.MustArtist(),
		Album:  nc.ncmFile.Metadata.MustAlbum(),
	}
	_ = tag.Write(nc.dumpPath, input, cover)
}

// DestroyNeteaseCrypt closes the underlying file and releases the handle.
// Idempotent and null-tolerant.
//
//export DestroyNeteaseCrypt
func DestroyNeteaseCrypt(handle unsafe.Pointer) {
	if handle == nil {
		return
	}
	h := cgo.Handle(uintptr(handle))
	if nc, ok := h.Value().(*neteaseCrypt); ok {
		nc.file.Close()
	}
	h.Delete()
}

func lookup(handle unsafe.Pointer) *neteaseCrypt {
	if handle == nil {
		return nil
	}
	h := cgo.Handle(uintptr(handle))
	nc, _ := h.Value().(*neteaseCrypt)
	return nc
}

func main() {}
