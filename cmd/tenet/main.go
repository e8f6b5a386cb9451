// Command tenet analyzes every experiment under a data directory and prints
// the traffic, reuse, delay and energy of each.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sarchlab/tenet/dataflow"
	"github.com/sarchlab/tenet/experiment"
	"github.com/tebeka/atexit"
)

var (
	dataDir     = flag.String("data", "data", "directory the experiment paths are relative to")
	expDir      = flag.String("experiments", "", "directory of experiment files (default <data>/experiment)")
	logFile     = flag.String("log", "", "write JSON logs with query traces to this file")
	reportFile  = flag.String("report", "", "also save the plain text report to this file")
	tableOutput = flag.Bool("table", false, "print tables instead of plain text")
	lint        = flag.Bool("lint", false, "check every mapping before analyzing it")
	bitsPerItem = flag.Int("bits", 16, "bits per tensor element")
	macs        = flag.Int("macs", 1, "MACs per statement instance")
	l2Weight    = flag.Float64("l2-energy", dataflow.DefaultEnergyModel().L2, "energy of one L2 access relative to one MAC")
)

func main() {
	params := make(map[string]int)
	flag.Func("param", "override a parameter, as NAME=VALUE (repeatable)", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("expected NAME=VALUE, got %q", s)
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		params[strings.TrimSpace(name)] = v
		return nil
	})
	flag.Parse()

	closeLog := setupLogging()
	atexit.Register(closeLog)

	dir := *expDir
	if dir == "" {
		dir = filepath.Join(*dataDir, "experiment")
	}

	exps, err := experiment.LoadDir(dir, *dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	energy := dataflow.DefaultEnergyModel()
	energy.L2 = *l2Weight

	runner := experiment.NewRunner(dataflow.NewBuilder().
		WithBitsPerItem(*bitsPerItem).
		WithMACsPerInstance(*macs).
		WithEnergyModel(energy)).
		WithLint(*lint)
	for k, v := range params {
		runner.WithParam(k, v)
	}

	summary, runErr := runner.RunAll(exps)

	if *tableOutput {
		fmt.Print(summary.Render())
	} else {
		summary.WriteReport(os.Stdout)
	}

	if *reportFile != "" {
		if err := summary.SaveReportToFile(*reportFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(1)
		}
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func setupLogging() func() {
	if *logFile == "" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})
		slog.SetDefault(slog.New(handler))

		return func() {}
	}

	f, err := os.Create(*logFile)
	if err != nil {
		panic(err)
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: dataflow.LevelTrace,
	})
	slog.SetDefault(slog.New(handler))

	return func() {
		f.Sync()
		f.Close()
	}
}
