package weather

// Unit is the caller's preferred temperature unit for output.
type Unit string

const (
	Celsius    Unit = "c"
	Fahrenheit Unit = "f"
)

// UnitSystem is the measurement system tag the feed reports for forecast
// values. Current conditions are always Fahrenheit-sourced regardless of
// this tag; see transformSections.
type UnitSystem string

const (
	UnitSystemUS UnitSystem = "US"
	UnitSystemSI UnitSystem = "SI"
)

// Settings carries the per-request output preferences. The zero value is
// usable: an empty Unit normalizes to Fahrenheit and an empty Language is
// forwarded to the feed as-is.
type Settings struct {
	Unit     Unit
	Language string
}

// ParseUnit normalizes degree unit input. Only the exact strings "c" and
// "f" are recognized; anything else, including the empty string and
// upper-case variants, resolves to Fahrenheit. Invalid input is never an
// error: the silent default is the documented normalization rule, kept for
// compatibility with existing callers.
func ParseUnit(s string) Unit {
	switch s {
	case "c":
		return Celsius
	case "f":
		return Fahrenheit
	default:
		return Fahrenheit
	}
}

// normalized forces the unit through ParseUnit so later stages never see
// an out-of-range value.
func (s Settings) normalized() Settings {
	s.Unit = ParseUnit(string(s.Unit))
	return s
}
