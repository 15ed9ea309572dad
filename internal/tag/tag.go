package tag

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bogem/id3v2"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
)

// Input is the metadata written into an audio file's tags. It is
// source-agnostic: the ncm package's Metadata is adapted into one of
// these at the call site, keeping tag decoupled from the NCM format.
type Input struct {
	Title  string
	Artist string // multiple artists are joined by "/" at the call site
	Album  string
}

// Cover is embedded album art; MimeType must be "image/jpeg" or
// "image/png".
type Cover struct {
	Data     []byte
	MimeType string
}

// Write strips any pre-existing tag frames at path and rewrites them from
// meta and cover, sniffing the container from its leading bytes. A
// malformed existing FLAC metadata block is reported as ErrTagParse but is
// non-fatal for the caller: the untagged audio on disk is still valid.
func Write(path string, meta Input, cover *Cover) error {
	head, err := readHead(path)
	if err != nil {
		return err
	}

	switch sniff(head) {
	case formatMP3:
		if err := writeMP3(path, meta, cover); err != nil {
			return fmt.Errorf("%w: %s", ErrTagParse, err)
		}
		return nil
	case formatFLAC:
		if err := writeFLAC(path, meta, cover); err != nil {
			return fmt.Errorf("%w: %s", ErrTagParse, err)
		}
		return nil
	default:
		return ErrUnknownFormat
	}
}

type containerFormat int

const (
	formatUnknown containerFormat = iota
	formatMP3
	formatFLAC
)

func sniff(head []byte) containerFormat {
	switch {
	case len(head) >= 3 && bytes.Equal(head[:3], []byte("ID3")):
		return formatMP3
	case len(head) >= 2 && head[0] == 0xFF && (head[1] == 0xFB || head[1] == 0xF3 || head[1] == 0xF2):
		return formatMP3
	case len(head) >= 4 && bytes.Equal(head[:4], []byte("fLaC")):
		return formatFLAC
	default:
		return formatUnknown
	}
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, 4)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// writeMP3 rewrites ID3v2.3 frames for an arbitrary Input/Cover pair.
func writeMP3(path string, meta Input, cover *Cover) error {
	mp3File, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		return err
	}
	defer mp3File.Close()

	mp3File.SetDefaultEncoding(id3v2.EncodingUTF8)
	mp3File.SetTitle(meta.Title)
	mp3File.SetArtist(meta.Artist)
	mp3File.SetAlbum(meta.Album)

	mp3File.DeleteFrames("APIC")
	if cover != nil && len(cover.Data) > 0 {
		pic := id3v2.PictureFrame{
			Encoding:    id3v2.EncodingISO,
			MimeType:    cover.MimeType,
			PictureType: id3v2.PTFrontCover,
			Description: "Front cover",
			Picture:     cover.Data,
		}
		mp3File.AddAttachedPicture(pic)
	}

	return mp3File.Save()
}

// writeFLAC rewrites or appends VORBIS_COMMENT and PICTURE metadata
// blocks for an arbitrary Input/Cover pair.
func writeFLAC(path string, meta Input, cover *Cover) error {
	flacFile, err := flac.ParseFile(path)
	if err != nil {
		return err
	}

	vcIndex, picIndex := -1, -1
	var vc *flacvorbis.MetaDataBlockVorbisComment

	for i, block := range flacFile.Meta {
		if block.Type == flac.VorbisComment {
			vc, err = flacvorbis.ParseFromMetaDataBlock(*block)
			if err != nil {
				return err
			}
			vcIndex = i
		}
		if block.Type == flac.Picture {
			picIndex = i
		}
	}
	if vc == nil {
		vc = flacvorbis.New()
	}

	_ = vc.Add(flacvorbis.FIELD_TITLE, meta.Title)
	if meta.Artist != "" {
		_ = vc.Add(flacvorbis.FIELD_ARTIST, meta.Artist)
	}
	_ = vc.Add(flacvorbis.FIELD_ALBUM, meta.Album)
	vcBlock := vc.Marshal()

	if vcIndex >= 0 {
		flacFile.Meta[vcIndex] = &vcBlock
	} else {
		flacFile.Meta = append(flacFile.Meta, &vcBlock)
	}

	if cover != nil && len(cover.Data) > 0 {
		pic, err := flacpicture.NewFromImageData(
			flacpicture.PictureTypeFrontCover, "Front cover", cover.Data, cover.MimeType)
		if err != nil {
			return err
		}
		picBlock := pic.Marshal()
		if picIndex >= 0 {
			flacFile.Meta[picIndex] = &picBlock
		} else {
			flacFile.Meta = append(flacFile.Meta, &picBlock)
		}
	}

	return flacFile.Save(path)
}
