package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/largest/internal/census"
	"github.com/idelchi/largest/internal/report"
	"github.com/idelchi/largest/internal/volume"
)

func logic(options Options) error {
	enableProgress := !options.Census.Debug && isatty.IsTerminal(os.Stderr.Fd())

	out := newConsole(os.Stdout, os.Stderr, isatty.IsTerminal(os.Stdout.Fd()))
	out.banner()

	roots := options.Roots
	if len(roots) == 0 {
		vols := volume.List()
		out.volumes(vols)

		roots = volume.Roots(vols)
	}

	if len(roots) == 0 {
		return census.ErrNoVolumes
	}

	file := report.New(options.Output, report.Format(options.Format))
	if options.Census.Debug {
		file.Unlabeled = func(vol string) {
			out.debug(fmt.Sprintf("[debug]: %s is not a drive root, using it as the section label", vol))
		}
	}

	if err := file.Reset(); err != nil {
		out.warn(err.Error())
	}

	hooks := census.Hooks{
		VolumeStarted: out.processing,
		VolumeDone: func(result *census.VolumeScanResult) {
			if enableProgress {
				out.clearStatus()
			}

			out.scanned(result)
		},
		EmitFailed: func(_ *census.VolumeScanResult, err error) {
			out.warn(err.Error())
		},
	}

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		out.hideCursor()
		defer out.showCursor()

		hooks.Progress = out.status
	}

	scanner := census.New(options.Census)

	summary, err := scanner.Run(context.Background(), roots, file, hooks)
	if err != nil {
		if enableProgress {
			out.clearStatus()
		}

		return err
	}

	out.complete(file.Path(), summary)

	return nil
}
