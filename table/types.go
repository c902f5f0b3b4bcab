package table

// DefaultComma is the field separator of the seminar tables.
const DefaultComma = ';'

// Options configures Read and Load.
//
// Comma – single-character field separator (default ';').
type Options struct {
	Comma rune
}

// Option represents a functional option for configuring Read.
type Option func(*Options)

// DefaultOptions returns ';'-separated parsing.
func DefaultOptions() Options {
	return Options{Comma: DefaultComma}
}

// WithComma sets the field separator.
func WithComma(r rune) Option {
	return func(o *Options) {
		o.Comma = r
	}
}
