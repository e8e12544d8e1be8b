package header

import (
	"fmt"

	"github.com/spectrakit/go-spc/internal/binary"
)

// LogHeader is the 64-byte record at the start of the trailing log block.
// The block stores an optional binary region directly after the header,
// followed by the log text.
type LogHeader struct {
	BinaryLen int // length of the binary region (logbins)
	TextLen   int // length of the text region
}

// BlockSize returns the total log block size on disk: header, binary data
// and text (logsizd).
func (l *LogHeader) BlockSize() int {
	return LogHeaderSize + l.BinaryLen + l.TextLen
}

// Encode serializes the log header to exactly LogHeaderSize bytes. The
// memory size field (logsizm) is the block size rounded to the nearest
// 4096-byte allocation unit.
func (l *LogHeader) Encode() ([]byte, error) {
	size := l.BlockSize()
	memSize := (size + 2048) / 4096 * 4096
	textOffset := LogHeaderSize + l.BinaryLen

	w := binary.NewWriter()
	w.WriteUint32(uint32(size))       // logsizd
	w.WriteUint32(uint32(memSize))    // logsizm
	w.WriteUint32(uint32(textOffset)) // logtxto
	w.WriteUint32(uint32(l.BinaryLen)) // logbins
	w.WriteUint32(0)                  // logdsks
	w.WriteZeros(logSpareSize)        // logspar

	if w.Len() != LogHeaderSize {
		return nil, fmt.Errorf("log header encoded to %d bytes, want %d", w.Len(), LogHeaderSize)
	}
	return w.Bytes(), nil
}
