package parser

// Variant identifies which statement layout a candidate line follows.
type Variant int

const (
	// VariantNone means the line matches no known layout and produces
	// no record.
	VariantNone Variant = iota
	// VariantLane is the newer toll layout: lane transaction id, then
	// the posted date.
	VariantLane
	// VariantDoubleDate is the older toll layout: posting date, then
	// transaction date.
	VariantDoubleDate
	// VariantSingleDate is a fee/payment row: a single leading date.
	VariantSingleDate
)

// Classify inspects the first two tokens of a candidate line and assigns
// its layout variant. The rules are checked in priority order; they
// cannot overlap because a digits-only token never matches the MM/DD/YY
// date pattern.
func Classify(toks []string) Variant {
	if len(toks) < 2 {
		return VariantNone
	}

	switch {
	case allDigits(toks[0]) && datePattern.MatchString(toks[1]):
		return VariantLane
	case datePattern.MatchString(toks[0]) && datePattern.MatchString(toks[1]):
		return VariantDoubleDate
	case datePattern.MatchString(toks[0]):
		return VariantSingleDate
	default:
		return VariantNone
	}
}
