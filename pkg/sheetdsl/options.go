package sheetdsl

// Notation selects how references are rendered in a snapshot.
type Notation string

const (
	// NotationNative renders each reference in its own notation (String).
	NotationNative Notation = "native"
	// NotationA1 renders every reference, R1C1 included, as a conventional
	// A1 cell name such as "AB2".
	NotationA1 Notation = "a1"
)

// Options configures snapshot behavior.
type Options struct {
	// Notation specifies how cell references are rendered.
	Notation Notation
	// IncludeEmpty specifies whether cells without a formula are included.
	// If nil, defaults to true.
	IncludeEmpty *bool
}

// DefaultOptions returns default snapshot options.
func DefaultOptions() Options {
	return Options{
		Notation: NotationNative,
	}
}

// ShouldIncludeEmpty returns whether to include cells without a formula.
func (o Options) ShouldIncludeEmpty() bool {
	if o.IncludeEmpty != nil {
		return *o.IncludeEmpty
	}
	return true
}

// ParseNotation maps a flag value to a Notation.
func ParseNotation(s string) (Notation, bool) {
	switch Notation(s) {
	case NotationNative, NotationA1:
		return Notation(s), true
	case "":
		return NotationNative, true
	}
	return "", false
}
