package spc

import "github.com/rs/zerolog"

// Option configures a Writer.
type Option func(*Writer)

// WithLogger sets the logger used for debug tracing of layout and encoding
// decisions. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Writer) {
		w.log = log
	}
}
