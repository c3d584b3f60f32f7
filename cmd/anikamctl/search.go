package main

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamdevo/AniKam/internal/browse"
)

var (
	searchType   string
	searchGenres []string
	searchStatus string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search anime and manga by title",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) > 0 {
			query = args[0]
		}
		typ, ok := parseContentType(searchType)
		if !ok {
			return errUnknownType(searchType)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		pg, err := newService().Search(ctx, browse.SearchParams{
			Query:  query,
			Type:   typ,
			Genres: strings.Join(searchGenres, ","),
			Status: searchStatus,
			Page:   flagPage,
			Limit:  flagLimit,
		})
		if err != nil {
			return err
		}
		printPage(pg)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "anime", "content type: anime, manga or all")
	searchCmd.Flags().StringSliceVarP(&searchGenres, "genres", "g", nil, "genre IDs to filter by")
	searchCmd.Flags().StringVar(&searchStatus, "status", "", "status filter (airing, complete, upcoming)")
}
