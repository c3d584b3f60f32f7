// anikamctl is a terminal client for the AniKam catalog: search, top
// charts, seasonal listings and detail lookups straight against the
// Jikan API, with the same pacing and retry behavior the gateway uses.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
