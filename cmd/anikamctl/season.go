package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamdevo/AniKam/internal/browse"
)

var seasonCmd = &cobra.Command{
	Use:   "season [year season]",
	Short: "List seasonal anime (current season when no arguments)",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		svc := newService()
		var (
			pg  browse.Page
			err error
		)
		switch len(args) {
		case 0:
			pg, err = svc.CurrentSeason(ctx, flagPage, flagLimit)
		case 2:
			year, convErr := strconv.Atoi(args[0])
			if convErr != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			season := strings.ToLower(args[1])
			switch season {
			case "winter", "spring", "summer", "fall":
			default:
				return fmt.Errorf("invalid season %q: want winter, spring, summer or fall", args[1])
			}
			pg, err = svc.Seasonal(ctx, year, season, flagPage, flagLimit)
		default:
			return fmt.Errorf("season takes no arguments or a year and a season")
		}
		if err != nil {
			return err
		}
		printPage(pg)
		return nil
	},
}
