package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamdevo/AniKam/internal/browse"
)

var topCmd = &cobra.Command{
	Use:       "top [anime|manga]",
	Short:     "Show the top-rated chart",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"anime", "manga"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := "anime"
		if len(args) > 0 {
			kind = args[0]
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		svc := newService()
		var (
			pg  browse.Page
			err error
		)
		switch kind {
		case "anime":
			pg, err = svc.TopAnime(ctx, flagPage, flagLimit)
		case "manga":
			pg, err = svc.TopManga(ctx, flagPage, flagLimit)
		default:
			return fmt.Errorf("unknown chart %q: want anime or manga", kind)
		}
		if err != nil {
			return err
		}
		printPage(pg)
		return nil
	},
}
