// Command tscskew measures the cycle counter skew between processors.
//
//	tscskew [-json] [-limit n] [-cpus list] number-of-processors
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/zeebo/tscskew/drift"
	"github.com/zeebo/tscskew/host"
	"github.com/zeebo/tscskew/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// diag writes diagnostics in the form "[program:pid] message".
type diag struct {
	w    io.Writer
	name string
}

func (d diag) print(err error) {
	fmt.Fprintf(d.w, "[%s:%d] %v\n", d.name, os.Getpid(), err)
}

func run(args []string, stdout, stderr io.Writer) int {
	d := diag{w: stderr, name: filepath.Base(os.Args[0])}

	fs := flag.NewFlagSet(d.name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "write the report as JSON")
	limit := fs.Int("limit", 0, "maximum number of processors (default and ceiling 32)")
	cpuList := fs.String("cpus", "", "comma separated processors to bind workers to (default 0..n-1)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] number-of-processors\n", d.name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}

	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		d.print(drift.Fatal.New("invalid processor count %q", fs.Arg(0)))
		return 1
	}

	cpus, err := parseCPUs(*cpuList)
	if err != nil {
		d.print(err)
		return 1
	}

	native := host.Native{}
	cfg := drift.Config{
		Workers: n,
		Limit:   *limit,
		CPUs:    cpus,
		Host:    native,
	}
	if err := cfg.Validate(); err != nil {
		d.print(err)
		return 1
	}

	if online, err := host.Online(); err != nil {
		d.print(drift.Warning.Wrap(err))
	} else if n > online {
		d.print(drift.Warning.New("%d processors requested but only %d available", n, online))
	}

	if runtime.GOMAXPROCS(0) < n {
		runtime.GOMAXPROCS(n)
	}

	res, err := drift.Run(cfg)
	if err != nil {
		d.print(err)
		return 1
	}

	for _, warn := range res.Warnings() {
		d.print(warn)
	}

	rep := report.New(res, native.Source())
	if *asJSON {
		err = rep.WriteJSON(stdout)
	} else {
		err = rep.WriteText(stdout)
	}
	if err != nil {
		d.print(err)
		return 1
	}

	return 0
}

// parseCPUs parses a comma separated list of processors. An empty list means
// the default binding.
func parseCPUs(list string) ([]int, error) {
	if list == "" {
		return nil, nil
	}

	var cpus []int
	for _, field := range strings.Split(list, ",") {
		cpu, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, drift.Fatal.New("invalid cpu %q", field)
		}
		cpus = append(cpus, cpu)
	}
	return cpus, nil
}
