package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/sugawarayuuta/sonnet"
)

// WriteText renders the counters table and the stamps table.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 4, 0, 2, ' ', tabwriter.AlignRight)

	line := func(cols ...string) { fmt.Fprintln(tw, strings.Join(cols, "\t")+"\t") }
	rule := func(n int) {
		cols := make([]string, n)
		for i := range cols {
			cols[i] = "----"
		}
		line(cols...)
	}
	spins := func(n uint64) string { return humanize.Comma(int64(n)) }

	line("CPU", "Faults", "Switches", "Assemble", "Stamp", "Stamp mp")
	rule(6)
	for _, row := range r.Rows {
		faults, switches := "-", "-"
		if row.Usage {
			faults = fmt.Sprintf("%d,%d", row.MinorFaults, row.MajorFaults)
			switches = fmt.Sprintf("%d,%d", row.VoluntarySwitches, row.InvoluntarySwitches)
		}
		line(fmt.Sprint(row.CPU), faults, switches,
			spins(row.AssembleSpins), spins(row.SimultaneousSpins), spins(row.RelaySpins))
	}
	line()

	line("CPU", "Stamp", "Stamp-mp")
	rule(3)
	for _, row := range r.Rows {
		line(fmt.Sprint(row.CPU), fmt.Sprint(row.Stamp), fmt.Sprint(row.StampRelay))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d workers, %s counter, minimum %d, fingerprint %s\n",
		r.Workers, r.Source, r.Min, r.Fingerprint)
	return err
}

// WriteJSON writes the report as a single JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := sonnet.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
