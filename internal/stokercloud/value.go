package stokercloud

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Unit tags a Value with the physical unit the controller reports it in.
type Unit string

const (
	KWh                Unit = "kwh"
	Percent            Unit = "pct"
	Degree             Unit = "deg" // degrees Celsius as the controller labels temperatures
	Kilogram           Unit = "kg"
	Gram               Unit = "g"
	CubicMetresPerHour Unit = "m3/h"
	Celsius            Unit = "C"
	Pascal             Unit = "pa"
)

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	switch u {
	case KWh, Percent, Degree, Kilogram, Gram, CubicMetresPerHour, Celsius, Pascal:
		return true
	}
	return false
}

// Symbol returns a short human-readable suffix for display.
func (u Unit) Symbol() string {
	switch u {
	case KWh:
		return "kWh"
	case Percent:
		return "%"
	case Degree, Celsius:
		return "°C"
	case CubicMetresPerHour:
		return "m³/h"
	case Pascal:
		return "Pa"
	default:
		return string(u)
	}
}

// Value is an exact decimal magnitude paired with its unit.
type Value struct {
	Magnitude decimal.Decimal
	Unit      Unit
}

// NewValue parses text as an exact decimal.
func NewValue(text string, unit Unit) (Value, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Value{}, err
	}
	return Value{Magnitude: d, Unit: unit}, nil
}

// Equal reports whether both values have the same unit and numerically equal
// magnitudes, so 62.30 and 62.3 compare equal.
func (v Value) Equal(other Value) bool {
	return v.Unit == other.Unit && v.Magnitude.Equal(other.Magnitude)
}

func (v Value) String() string {
	return fmt.Sprintf("%s %s", v.Magnitude.String(), v.Unit)
}

// Display formats the value with its unit symbol, e.g. "62.3 °C".
func (v Value) Display() string {
	return v.Magnitude.String() + " " + v.Unit.Symbol()
}

// MarshalJSON encodes the value as {"value":"62.3","unit":"deg"}, keeping the
// magnitude as a string so no precision is lost.
func (v Value) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, `{"value":%q,"unit":%q}`, v.Magnitude.String(), string(v.Unit)), nil
}

// roundOneDecimal normalizes a magnitude to one decimal place using round
// half to even on the exact decimal text: 62.25 -> 62.2, 62.35 -> 62.4.
func roundOneDecimal(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(1)
}

// PowerState is the on/off reading of alarm and running flags.
type PowerState int

const (
	Off PowerState = 0
	On  PowerState = 1
)

func (p PowerState) String() string {
	switch p {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return fmt.Sprintf("PowerState(%d)", int(p))
	}
}
