package header

import (
	"github.com/spectrakit/go-spc/internal/binary"
)

// DirEntry locates one subfile in an XYXYXY file. The directory is an array
// of these entries written after the last subfile; the main header's Points
// field holds its byte offset.
type DirEntry struct {
	Offset uint32  // ssfposn, absolute byte offset of the subheader
	Size   uint32  // ssfsize, subheader plus data bytes
	Z      float32 // ssftime, the subfile's Z value
}

// EncodeTo appends the 12-byte entry to w.
func (d *DirEntry) EncodeTo(w *binary.Writer) {
	w.WriteUint32(d.Offset)
	w.WriteUint32(d.Size)
	w.WriteFloat32(d.Z)
}
