package header

import "time"

// PackTime packs a timestamp into the fdate field layout: minutes in the
// low 6 bits, then hour (5 bits), day (5 bits), month (4 bits) and year in
// the remaining high bits. The zero time packs to 0, which the format
// treats as "no date".
func PackTime(t time.Time) uint32 {
	if t.IsZero() {
		return 0
	}
	return uint32(t.Minute()) |
		uint32(t.Hour())<<6 |
		uint32(t.Day())<<11 |
		uint32(t.Month())<<16 |
		uint32(t.Year())<<20
}

// UnpackTime reverses PackTime. A zero field yields the zero time.
func UnpackTime(packed uint32) time.Time {
	if packed == 0 {
		return time.Time{}
	}
	minute := int(packed & 0x3F)
	hour := int(packed >> 6 & 0x1F)
	day := int(packed >> 11 & 0x1F)
	month := time.Month(packed >> 16 & 0x0F)
	year := int(packed >> 20)
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
