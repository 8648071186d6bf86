// Command largest reports the largest files on each local volume.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/idelchi/largest/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set by ldflags
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
