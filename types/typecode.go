package types

// TypeCode is the static type of an expression
type TypeCode int

const (
	NUMBER TypeCode = iota
	STRING
	BOOLEAN
	// UNKNOWN is the type of a reference to an identifier that was never
	// assigned. It only exists during validation.
	UNKNOWN
)

// String returns the string representation of the type code
func (t TypeCode) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case BOOLEAN:
		return "BOOLEAN"
	default:
		return "UNKNOWN"
	}
}

// CanEquateTo reports whether == and != are valid between t and other.
// Callers must filter out UNKNOWN first.
func (t TypeCode) CanEquateTo(other TypeCode) bool {
	if t == UNKNOWN {
		Invariantf("CanEquateTo called on UNKNOWN type")
	}
	return t == other
}

// CanCompareTo reports whether <, <=, > and >= are valid between t and
// other. Callers must filter out UNKNOWN and BOOLEAN first.
func (t TypeCode) CanCompareTo(other TypeCode) bool {
	switch t {
	case UNKNOWN, BOOLEAN:
		Invariantf("CanCompareTo called on %s type", t)
	}
	return t == other
}
