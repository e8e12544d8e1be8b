package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	binpkg "github.com/spectrakit/go-spc/internal/binary"
	"github.com/spectrakit/go-spc/internal/fixedpoint"
	"github.com/spectrakit/go-spc/internal/header"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.spc>",
		Short: "Dump the header and subfile structure of an SPC file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	h, err := header.ParseMain(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Printf("file:        %s (%d bytes)\n", path, len(data))
	fmt.Printf("flags:       0x%02X%s\n", h.FileType, flagNames(h.FileType))
	fmt.Printf("version:     0x%02X\n", h.Version)
	fmt.Printf("exponent:    %s\n", exponentString(h.Exponent))
	fmt.Printf("subfiles:    %d\n", h.Subfiles)
	fmt.Printf("x range:     %g .. %g\n", h.FirstX, h.LastX)
	fmt.Printf("units x/y/z: %d / %d / %d\n", h.XUnits, h.YUnits, h.ZUnits)
	if ts := header.UnpackTime(h.Date); !ts.IsZero() {
		fmt.Printf("date:        %s\n", ts.Format("2006-01-02 15:04"))
	}
	if h.Memo != "" {
		fmt.Printf("memo:        %q\n", h.Memo)
	}
	if h.SourceInstr != "" {
		fmt.Printf("instrument:  %q\n", h.SourceInstr)
	}

	if h.FileType&header.FlagXYXY != 0 {
		err = inspectDirectory(data, h)
	} else {
		err = inspectSequential(data, h)
	}
	if err != nil {
		return err
	}

	if h.LogOffset != 0 {
		return inspectLog(data, int(h.LogOffset))
	}
	return nil
}

// inspectSequential walks the fixed-stride subfiles of non-XYXYXY layouts.
func inspectSequential(data []byte, h *header.Main) error {
	points := int(h.Points)
	pos := header.MainSize
	if h.FileType&header.FlagXValues != 0 {
		fmt.Printf("shared x:    %d points at offset %d\n", points, pos)
		pos += 4 * points
	}
	for i := 0; i < int(h.Subfiles); i++ {
		if pos+header.SubSize > len(data) {
			return fmt.Errorf("subfile %d: truncated at offset %d", i, pos)
		}
		sub, err := header.ParseSub(data[pos:])
		if err != nil {
			return err
		}
		printSub(i, pos, points, sub)
		pos += header.SubSize + 4*points
	}
	return nil
}

// inspectDirectory walks XYXYXY subfiles via the trailing directory, whose
// offset lives in the header's points field.
func inspectDirectory(data []byte, h *header.Main) error {
	r := binpkg.NewReader(data)
	if err := r.Seek(int(h.Points)); err != nil {
		return fmt.Errorf("directory offset %d out of range", h.Points)
	}
	fmt.Printf("directory:   offset %d, %d entries\n", h.Points, h.Subfiles)
	for i := 0; i < int(h.Subfiles); i++ {
		offset, err := r.ReadUint32()
		if err != nil {
			return err
		}
		size, err := r.ReadUint32()
		if err != nil {
			return err
		}
		if _, err := r.ReadFloat32(); err != nil {
			return err
		}
		if int(offset)+header.SubSize > len(data) {
			return fmt.Errorf("subfile %d: directory points past end (offset %d)", i, offset)
		}
		sub, err := header.ParseSub(data[offset:])
		if err != nil {
			return err
		}
		printSub(i, int(offset), int(sub.Points), sub)
		fmt.Printf("             size=%d bytes\n", size)
	}
	return nil
}

func printSub(i, offset, points int, sub *header.Sub) {
	fmt.Printf("subfile %-3d  offset=%d points=%d exponent=%s z=%g flags=0x%02X\n",
		i, offset, points, exponentString(sub.Exponent), sub.StartZ, sub.Flags)
}

func inspectLog(data []byte, offset int) error {
	r := binpkg.NewReader(data)
	if err := r.Seek(offset); err != nil {
		return fmt.Errorf("log offset %d out of range", offset)
	}
	blockSize, err := r.ReadUint32()
	if err != nil {
		return err
	}
	if err := r.Skip(4); err != nil { // memory size
		return err
	}
	textOffset, err := r.ReadUint32()
	if err != nil {
		return err
	}
	binLen, err := r.ReadUint32()
	if err != nil {
		return err
	}
	fmt.Printf("log block:   offset=%d size=%d binary=%d\n", offset, blockSize, binLen)
	textStart := offset + int(textOffset)
	textEnd := offset + int(blockSize)
	if textStart <= textEnd && textEnd <= len(data) {
		fmt.Printf("log text:\n%s", data[textStart:textEnd])
	}
	return nil
}

func exponentString(exp int8) string {
	if int(exp) == fixedpoint.IEEEExponent {
		return "ieee"
	}
	return fmt.Sprintf("%d", exp)
}

func flagNames(flags uint8) string {
	names := ""
	add := func(bit uint8, name string) {
		if flags&bit != 0 {
			names += " " + name
		}
	}
	add(header.FlagSixteenPrec, "16bit")
	add(header.FlagMulti, "multi")
	add(header.FlagRandomZ, "random-z")
	add(header.FlagOrderedZ, "ordered-z")
	add(header.FlagCustomAxes, "custom-axes")
	add(header.FlagXYXY, "xyxy")
	add(header.FlagXValues, "x-values")
	return names
}
