package stokercloud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Section names as they appear in the status document.
const (
	SectionDocument    = "document"
	SectionMisc        = "miscdata"
	SectionFront       = "frontdata"
	SectionBoiler      = "boilerdata"
	SectionHopper      = "hopperdata"
	SectionDHW         = "dhwdata"
	SectionLeftOutput  = "leftoutput"
	SectionWeatherComp = "weathercomp"
)

// Document mirrors the payload returned by controllerdata2.php. Only the
// members the status view reads are modelled.
type Document struct {
	NotConnected Scalar            `json:"notconnected"`
	Serial       Scalar            `json:"serial"`
	MiscData     MiscData          `json:"miscdata"`
	FrontData    []Field           `json:"frontdata"`
	BoilerData   []Field           `json:"boilerdata"`
	HopperData   []Field           `json:"hopperdata"`
	DHWData      []Field           `json:"dhwdata"`
	LeftOutput   map[string]Output `json:"leftoutput"`
	WeatherComp  WeatherComp       `json:"weathercomp"`
}

// Field is one {id, value} record of a keyed-list section.
type Field struct {
	ID    Scalar `json:"id"`
	Value Scalar `json:"value"`
}

// Output is a {val} record, used by leftoutput and weathercomp.
type Output struct {
	Val Scalar `json:"val"`
}

// Reading is a {value} record inside miscdata.
type Reading struct {
	Value Scalar `json:"value"`
}

// MiscData holds controller-wide flags.
type MiscData struct {
	Alarm             Scalar   `json:"alarm"`
	Running           Scalar   `json:"running"`
	State             *Reading `json:"state"`
	Clock             *Reading `json:"clock"`
	HopperDistanceMax Scalar   `json:"hopper.distance_max"`
}

// WeatherComp holds the weather compensation zones.
type WeatherComp struct {
	Zone1Active    Scalar  `json:"zone1active"`
	Zone2Active    Scalar  `json:"zone2active"`
	Zone1Wanted    *Output `json:"zone1-wanted"`
	Zone1Actual    *Output `json:"zone1-actual"`
	Zone1Valve     *Output `json:"zone1-valve"`
	Zone1ActualRef *Output `json:"zone1-actualref"`
	Zone1Calc      *Output `json:"zone1-calc"`
	Zone2Wanted    *Output `json:"zone2-wanted"`
	Zone2Actual    *Output `json:"zone2-actual"`
	Zone2Valve     *Output `json:"zone2-valve"`
	Zone2ActualRef *Output `json:"zone2-actualref"`
	Zone2Calc      *Output `json:"zone2-calc"`
}

// DecodeDocument parses a raw status payload.
func DecodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode status document: %w", err)
	}
	return &doc, nil
}

// lookupField returns the first record whose id equals id. The boolean is
// false only when no record matches; a matching record with a zero or empty
// value is still found.
func lookupField(fields []Field, id string) (Field, bool) {
	for _, f := range fields {
		if f.ID.present() && f.ID.text == id {
			return f, true
		}
	}
	return Field{}, false
}

type scalarKind uint8

const (
	scalarAbsent scalarKind = iota
	scalarNull
	scalarString
	scalarNumber
	scalarBool
)

// Scalar holds a JSON string, number or boolean in its textual form. Numbers
// keep their literal text so they convert to decimals without going through
// float64.
type Scalar struct {
	text string
	kind scalarKind
}

// StringScalar builds a Scalar holding a JSON string.
func StringScalar(s string) Scalar {
	return Scalar{text: s, kind: scalarString}
}

// NumberScalar builds a Scalar holding a JSON number literal.
func NumberScalar(literal string) Scalar {
	return Scalar{text: literal, kind: scalarNumber}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty scalar")
	}
	switch trimmed[0] {
	case 'n':
		*s = Scalar{kind: scalarNull}
	case '"':
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return err
		}
		*s = Scalar{text: str, kind: scalarString}
	case 't', 'f':
		*s = Scalar{text: string(trimmed), kind: scalarBool}
	case '{', '[':
		return fmt.Errorf("expected scalar, got %s", trimmed[:1])
	default:
		*s = Scalar{text: string(trimmed), kind: scalarNumber}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case scalarString:
		return json.Marshal(s.text)
	case scalarNumber, scalarBool:
		return []byte(s.text), nil
	default:
		return []byte("null"), nil
	}
}

// Present reports whether the member was sent with a non-null value.
func (s Scalar) Present() bool {
	return s.present()
}

func (s Scalar) present() bool {
	return s.kind == scalarString || s.kind == scalarNumber || s.kind == scalarBool
}

// String returns the textual form; empty for absent or null members.
func (s Scalar) String() string {
	return s.text
}

// Decimal parses the scalar as an exact decimal. Only '.' is accepted as the
// decimal separator.
func (s Scalar) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s.text))
}

// Int parses the scalar as an integer.
func (s Scalar) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(s.text))
}
