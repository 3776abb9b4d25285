// Package main provides the tagger CLI: the same extraction pipeline the
// Lambda runs, driven from a workstation for local files, live buckets, or
// recorded notifications.
package main

import (
	"fmt"
	"os"

	"github.com/dataplatform-utils/sheet-tagger/internal/logging"
)

func main() {
	logging.Init()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
