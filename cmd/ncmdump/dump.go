package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/jdxj/ncmdump/internal/logging"
	"github.com/jdxj/ncmdump/internal/ncm"
	"github.com/jdxj/ncmdump/internal/tag"
)

var (
	errNoNCMFile     = errors.New("no ncm file found")
	errInvalidOutput = errors.New("output is not a directory")
)

func newDumpCmd() *cobra.Command {
	var (
		dir       string
		recursive bool
		output    string
		metadata  bool
	)

	cmd := &cobra.Command{
		Use:   "dump [FILE]...",
		Short: "Decrypt .ncm files into playable audio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				if len(args) == 0 {
					return exitErr(exitUserError, fmt.Errorf("%w: pass a file or -d DIR", errNoNCMFile))
				}
				for _, path := range args {
					out := filepath.Dir(path)
					if output != "" {
						out = output
					}
					if err := dumpOne(path, out, true); err != nil {
						return exitErr(exitDecode, err)
					}
					cmd.Printf("decrypted: %s\n", path)
				}
				return nil
			}

			inputFiles, err := findNCMFiles(dir, recursive)
			if err != nil {
				return exitErr(exitUserError, err)
			}
			if output == "" {
				output = "."
			}
			if err := checkOutputDir(output); err != nil {
				return exitErr(exitUserError, err)
			}

			return exitErr(exitDecode, dumpBatch(cmd, inputFiles, output, metadata))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&dir, "dir", "d", "", "decrypt every .ncm file under this directory")
	flags.BoolVarP(&recursive, "recursive", "r", false, "recurse into subdirectories of -d")
	flags.StringVarP(&output, "output", "o", "", "output directory (defaults to the source directory)")
	flags.BoolVarP(&metadata, "metadata", "m", false, "also embed title/artist/album/cover tags")
	return cmd
}

func findNCMFiles(dir string, recursive bool) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ".ncm" {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errNoNCMFile
	}
	return files, nil
}

func checkOutputDir(output string) error {
	info, err := os.Stat(output)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", errInvalidOutput, output)
	}
	return nil
}

// dumpBatch submits one dumpOne call per file to the shared worker pool,
// using a wait group to block until every submission finishes, and
// reports a single aggregate error rather than only printing per-file
// failures.
func dumpBatch(cmd *cobra.Command, files []string, output string, metadata bool) error {
	wg := sync.WaitGroup{}
	wg.Add(len(files))

	var (
		mu     sync.Mutex
		failed []string
	)
	for _, path := range files {
		path := path
		err := gPool.Submit(func() {
			defer wg.Done()
			if err := dumpOne(path, output, metadata); err != nil {
				logging.Log.WithField("file", path).WithError(err).Error("dump failed")
				mu.Lock()
				failed = append(failed, path)
				mu.Unlock()
				cmd.PrintErrf("failed: %s: %s\n", path, err)
				return
			}
			cmd.Printf("decrypted: %s\n", path)
		})
		if err != nil {
			wg.Done()
			return err
		}
	}
	wg.Wait()

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed to decrypt", len(failed), len(files))
	}
	return nil
}

// dumpOne decrypts the audio payload of path into outDir, optionally
// embedding tags and cover art recovered from the NCM metadata section.
func dumpOne(path, outDir string, embedMetadata bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	file, err := ncm.Open(f)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, base+"."+file.Metadata.MustFormat())

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, file.Audio()); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if !embedMetadata {
		return nil
	}
	return fixMetadata(outPath, file)
}

// fixMetadata writes title/artist/album and cover art into the audio file
// already decrypted at outPath. A tag.ErrUnknownFormat or ErrTagParse is
// logged and swallowed: the untagged audio on disk is still valid.
func fixMetadata(outPath string, file *ncm.File) error {
	var cover *tag.Cover
	if file.Cover != nil {
		cover = &tag.Cover{Data: file.Cover.Data, MimeType: file.Cover.MimeType}
	}
	input := tag.Input{
		Title:  file.Metadata.MustMusicName(),
		Artist: file.Metadata.MustArtist(),
		Album:  file.Metadata.MustAlbum(),
	}
	if err := tag.Write(outPath, input, cover); err != nil {
		logging.Log.WithField("file", outPath).WithError(err).Warn("tag embed failed, audio kept untagged")
		return nil
	}
	return nil
}
