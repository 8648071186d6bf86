package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"

	"github.com/idelchi/largest/internal/census"
	"github.com/idelchi/largest/internal/report"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options configures a run of the CLI.
type Options struct {
	// Census configures walking and ranking.
	Census census.Options
	// Roots replaces volume enumeration when not empty.
	Roots []string
	// Output is the report file.
	Output string
	// Format is the report format.
	Format string
	// Version indicates whether to show version and exit.
	Version bool
}

func help(flags *pflag.FlagSet) func() {
	return func() {
		//nolint:forbidigo // Help output to console
		fmt.Println(heredoc.Doc(`
			largest finds the largest files on every local fixed or removable volume
			and writes them to a report, one section per volume.

			Usage:

				largest [flags] [root...]

			Positional Arguments:
			  root                   Directories to scan instead of the enumerated volumes.

			Hidden, system and temporary files are not reported. Symbolic links,
			junctions and mount points are never followed.

			Flags:
		`))
		flags.PrintDefaults()
	}
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute(args []string) error {
	options, err := parse(args)
	if err != nil {
		return err
	}

	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	return logic(options)
}

// parse builds Options from the command-line arguments, excluding the program name.
func parse(args []string) (Options, error) {
	var options Options

	flags := pflag.NewFlagSet("largest", pflag.ContinueOnError)

	flags.StringVarP(&options.Output, "output", "o", report.DefaultPath, "Report file")
	flags.IntVarP(&options.Census.TopN, "top", "t", census.DefaultTopN, "Number of largest files to report per volume")
	flags.StringVarP(&options.Format, "format", "f", string(report.FormatText), "Report format: text or json")
	flags.BoolVarP(&options.Census.Parallel, "parallel", "p", false, "Walk each volume with parallel workers")
	flags.IntVarP(&options.Census.Workers, "workers", "w", 0, "Number of parallel workers (0=auto)")
	flags.BoolVar(&options.Census.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	flags.SortFlags = false
	flags.Usage = help(flags)

	if err := flags.Parse(args); err != nil {
		return options, err
	}

	if options.Version {
		return options, nil
	}

	if !slices.Contains(report.Formats, report.Format(options.Format)) {
		return options, fmt.Errorf("invalid format %q: must be one of %v", options.Format, report.Formats)
	}

	if options.Census.TopN < 1 {
		return options, errors.New("top must be at least 1")
	}

	if options.Census.Workers < 0 {
		return options, errors.New("workers cannot be negative")
	}

	if options.Output == "" {
		return options, errors.New("output cannot be empty")
	}

	options.Roots = flags.Args()

	return options, nil
}
