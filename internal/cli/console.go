package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/largest/internal/census"
	"github.com/idelchi/largest/internal/volume"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// console prints progress lines for the user. Headings are styled only when
// stdout is a terminal.
type console struct {
	out     io.Writer
	err     io.Writer
	heading lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

func newConsole(out, err io.Writer, styled bool) *console {
	c := &console{
		out:     out,
		err:     err,
		heading: lipgloss.NewStyle(),
		muted:   lipgloss.NewStyle(),
		warning: lipgloss.NewStyle(),
	}

	if styled {
		c.heading = c.heading.Bold(true).Foreground(lipgloss.Color("12"))
		c.muted = c.muted.Faint(true)
		c.warning = c.warning.Foreground(lipgloss.Color("9"))
	}

	return c
}

func (c *console) banner() {
	fmt.Fprintln(c.out, c.heading.Render("File Scanner"))
	fmt.Fprintln(c.out, "----------------------------------------")
}

func (c *console) volumes(vols []volume.Volume) {
	fmt.Fprintln(c.out, c.heading.Render("[Drive Scan]"))

	for _, v := range vols {
		if v.Kind == volume.Removable {
			fmt.Fprintf(c.out, "Including drive: %s %s\n", v.Root, c.muted.Render("(removable)"))

			continue
		}

		fmt.Fprintf(c.out, "Including drive: %s\n", v.Root)
	}
}

func (c *console) processing(label string) {
	fmt.Fprintf(c.out, "\n%s\n", c.heading.Render("Processing "+label))
}

// scanned prints the per-volume summary table.
func (c *console) scanned(result *census.VolumeScanResult) {
	w := tabwriter.NewWriter(c.out, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "Scanned %s in %.1f seconds\n", result.Label, result.Elapsed.Seconds())
	fmt.Fprintf(w, "Found %s files\t%s\n",
		humanize.Comma(result.Tally.Files), humanize.IBytes(result.Tally.Bytes))

	if result.Tally.Errors > 0 {
		fmt.Fprintf(w, "Skipped\t%s unreadable\n", humanize.Comma(result.Tally.Errors))
	}

	reasons := make([]census.FilterReason, 0, len(result.Tally.Filtered))
	for reason := range result.Tally.Filtered {
		reasons = append(reasons, reason)
	}

	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })

	for _, reason := range reasons {
		fmt.Fprintf(w, "Excluded\t%s %s\n", humanize.Comma(result.Tally.Filtered[reason]), reason)
	}

	_ = w.Flush()
}

// status rewrites the in-place progress line on stderr.
func (c *console) status(label string, tally census.Tally) {
	msg := fmt.Sprintf("Scanning %s… %s files, %s",
		label, humanize.Comma(tally.Files), humanize.IBytes(tally.Bytes))
	fmt.Fprintf(c.err, "\r\033[2K%s\r", msg)
}

func (c *console) clearStatus() {
	fmt.Fprint(c.err, "\r\033[2K\r")
}

func (c *console) hideCursor() {
	fmt.Fprint(c.err, "\033[?25l")
}

func (c *console) showCursor() {
	fmt.Fprint(c.err, "\033[?25h")
}

func (c *console) warn(msg string) {
	fmt.Fprintln(c.err, c.warning.Render(msg))
}

func (c *console) debug(msg string) {
	fmt.Fprintln(c.out, c.muted.Render(msg))
}

func (c *console) complete(path string, summary census.Summary) {
	if summary.Failed > 0 {
		c.warn(fmt.Sprintf("%d of %d volumes could not be written to the report", summary.Failed, summary.Volumes))
	}

	fmt.Fprintf(c.out, "\n%s\n", c.heading.Render("Scan complete. Results saved to "+path))
}
