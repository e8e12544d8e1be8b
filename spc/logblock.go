package spc

import "strings"

// textBytes renders the log block text region: the pre-serialized Text if
// set, otherwise the ordered entries as "key = value" lines with CRLF
// terminators, the line convention GRAMS software expects.
func (l *LogBlock) textBytes() []byte {
	if l.Text != "" {
		return []byte(l.Text)
	}
	if len(l.Entries) == 0 {
		return nil
	}
	var b strings.Builder
	for _, e := range l.Entries {
		b.WriteString(e.Key)
		b.WriteString(" = ")
		b.WriteString(e.Value)
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}

// empty reports whether the block would contribute no bytes at all.
func (l *LogBlock) empty() bool {
	return l == nil || (len(l.Data) == 0 && len(l.textBytes()) == 0)
}
