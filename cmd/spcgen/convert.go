package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spectrakit/go-spc/spc"
)

type convertOptions struct {
	noX        bool
	xyPairs    bool
	firstX     float64
	lastX      float64
	legacy     bool
	xUnit      uint8
	yUnit      uint8
	technique  uint8
	memo       string
	instrument string
	resolution string
	logEntries []string
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert <input.csv> <output.spc>",
		Short: "Convert a CSV of numeric columns to an SPC file",
		Long: `Convert a CSV of numeric columns to an SPC file.

By default the first column is the shared X axis and each remaining column
becomes one Y trace. With --no-x every column is a Y trace over an evenly
spaced axis from --first-x to --last-x. With --xy-pairs the columns are
consumed as x,y pairs, one pair per trace, producing an XYXYXY file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], args[1], opts)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.noX, "no-x", false, "treat every column as a Y trace (evenly spaced axis)")
	f.BoolVar(&opts.xyPairs, "xy-pairs", false, "treat columns as x,y pairs with one pair per trace")
	f.Float64Var(&opts.firstX, "first-x", 0, "first X value for the evenly spaced axis")
	f.Float64Var(&opts.lastX, "last-x", 0, "last X value for the evenly spaced axis")
	f.BoolVar(&opts.legacy, "legacy", false, "store Y data in the legacy fixed-point representation")
	f.Uint8Var(&opts.xUnit, "x-unit", 0, "X axis unit code")
	f.Uint8Var(&opts.yUnit, "y-unit", 0, "Y axis unit code")
	f.Uint8Var(&opts.technique, "technique", 0, "instrumental technique code")
	f.StringVar(&opts.memo, "memo", "", "memo text")
	f.StringVar(&opts.instrument, "instrument", "", "source instrument description")
	f.StringVar(&opts.resolution, "resolution", "", "resolution description")
	f.StringArrayVar(&opts.logEntries, "log", nil, "log block entry as key=value (repeatable)")
	return cmd
}

func runConvert(inPath, outPath string, opts *convertOptions) error {
	cols, err := readColumns(inPath)
	if err != nil {
		return err
	}

	c := &spc.SpectraCollection{
		XUnits:           spc.XUnit(opts.xUnit),
		YUnits:           spc.YUnit(opts.yUnit),
		Technique:        spc.TechType(opts.technique),
		Timestamp:        time.Now(),
		Memo:             opts.memo,
		SourceInstrument: opts.instrument,
		ResolutionDesc:   opts.resolution,
	}
	if opts.legacy {
		c.Mode = spc.EncodingLegacy
	}

	switch {
	case opts.xyPairs:
		if len(cols)%2 != 0 {
			return fmt.Errorf("--xy-pairs needs an even column count, got %d", len(cols))
		}
		for i := 0; i < len(cols); i += 2 {
			c.Spectra = append(c.Spectra, spc.Spectrum{X: cols[i], Y: cols[i+1]})
		}
	case opts.noX:
		for _, col := range cols {
			c.Spectra = append(c.Spectra, spc.Spectrum{Y: col})
		}
		if opts.firstX != 0 || opts.lastX != 0 {
			c.Even = &spc.EvenSpacing{FirstX: opts.firstX, LastX: opts.lastX}
		}
	default:
		if len(cols) < 2 {
			return fmt.Errorf("need an x column and at least one y column, got %d columns", len(cols))
		}
		c.GlobalX = cols[0]
		for _, col := range cols[1:] {
			c.Spectra = append(c.Spectra, spc.Spectrum{Y: col})
		}
	}

	if len(opts.logEntries) > 0 {
		block := &spc.LogBlock{}
		for _, e := range opts.logEntries {
			key, value, ok := strings.Cut(e, "=")
			if !ok {
				return fmt.Errorf("malformed --log entry %q, want key=value", e)
			}
			block.Entries = append(block.Entries, spc.LogEntry{Key: key, Value: value})
		}
		c.Log = block
	}

	w := spc.NewWriter(spc.WithLogger(newLogger()))
	if err := w.WriteFile(c, outPath); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("wrote %s: %d trace(s)\n", outPath, len(c.Spectra))
	return nil
}

// readColumns parses the CSV into per-column float slices. A non-numeric
// first row is treated as a header and skipped.
func readColumns(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	start := 0
	if _, err := strconv.ParseFloat(strings.TrimSpace(records[0][0]), 64); err != nil {
		start = 1
	}
	if start >= len(records) {
		return nil, fmt.Errorf("%s has no data rows", path)
	}

	width := len(records[start])
	cols := make([][]float64, width)
	for rowIdx, row := range records[start:] {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d", start+rowIdx+1, len(row), width)
		}
		for i, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", start+rowIdx+1, i+1, err)
			}
			cols[i] = append(cols[i], v)
		}
	}
	return cols, nil
}
