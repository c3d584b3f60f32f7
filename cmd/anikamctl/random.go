package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamdevo/AniKam/internal/browse"
)

var randomCmd = &cobra.Command{
	Use:       "random [anime|manga]",
	Short:     "Fetch a random entry",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"anime", "manga"},
	RunE: func(cmd *cobra.Command, args []string) error {
		typ := browse.ContentAnime
		if len(args) > 0 {
			var ok bool
			typ, ok = parseContentType(args[0])
			if !ok || typ == browse.ContentAll {
				return errUnknownType(args[0])
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		m, err := newService().Random(ctx, typ)
		if err != nil {
			return err
		}
		printDetails(m)
		return nil
	},
}

func parseContentType(v string) (browse.ContentType, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "anime":
		return browse.ContentAnime, true
	case "manga":
		return browse.ContentManga, true
	case "all":
		return browse.ContentAll, true
	}
	return "", false
}

func errUnknownType(v string) error {
	return fmt.Errorf("unknown type %q: want anime or manga", v)
}
