package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdxj/ncmdump/internal/netease"
)

func newSearchCmd() *cobra.Command {
	var (
		typ   string
		limit uint64
	)

	cmd := &cobra.Command{
		Use:   "search <KEYWORD>",
		Short: "Search tracks, albums, artists, or playlists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			searchType, err := parseSearchType(typ)
			if err != nil {
				return exitErr(exitUserError, err)
			}

			client, err := netease.New()
			if err != nil {
				return exitErr(exitUserError, err)
			}

			result, err := client.Search(args[0], searchType, limit, 0)
			if err != nil {
				return exitErr(exitNetwork, err)
			}

			printSearchResult(cmd, searchType, result)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&typ, "type", "t", "track", "track|album|artist|playlist")
	flags.Uint64VarP(&limit, "limit", "l", 30, "maximum number of results")
	return cmd
}

func parseSearchType(s string) (netease.SearchType, error) {
	switch s {
	case "track", "":
		return netease.SearchTrack, nil
	case "album":
		return netease.SearchAlbum, nil
	case "artist":
		return netease.SearchArtist, nil
	case "playlist":
		return netease.SearchPlaylist, nil
	default:
		return 0, fmt.Errorf("unknown search type: %q", s)
	}
}

func artistNames(artists []netease.Artist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, "/")
}

func printSearchResult(cmd *cobra.Command, searchType netease.SearchType, result netease.SearchResult) {
	switch searchType {
	case netease.SearchTrack:
		cmd.Printf("%d results\n", result.Total)
		for _, t := range result.Tracks {
			cmd.Printf("%d\t%s\t%s\n", t.ID, t.Name, artistNames(t.Artists))
		}
	case netease.SearchAlbum:
		cmd.Printf("%d results\n", result.Total)
		for _, a := range result.Albums {
			cmd.Printf("%d\t%s\n", a.ID, a.Name)
		}
	case netease.SearchArtist:
		cmd.Printf("%d results\n", result.Total)
		for _, a := range result.Artists {
			cmd.Printf("%d\t%s\n", a.ID, a.Name)
		}
	case netease.SearchPlaylist:
		cmd.Printf("%d results\n", result.Total)
		for _, p := range result.Playlists {
			cmd.Printf("%d\t%s\n", p.ID, p.Name)
		}
	}
}
