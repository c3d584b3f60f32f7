package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamdevo/AniKam/internal/browse"
)

var infoType string

var infoCmd = &cobra.Command{
	Use:   "info [id]",
	Short: "Show full details for one entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid id %q", args[0])
		}
		typ, ok := parseContentType(infoType)
		if !ok || typ == browse.ContentAll {
			return errUnknownType(infoType)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		m, err := newService().Details(ctx, typ, id)
		if err != nil {
			return err
		}
		printDetails(m)
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVarP(&infoType, "type", "t", "anime", "content type: anime or manga")
}
