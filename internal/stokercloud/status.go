package stokercloud

import (
	"errors"
	"fmt"
	"strings"
)

// Status is a read-only view over one status document. Every accessor builds
// its result fresh from the document; nothing is cached.
type Status struct {
	doc *Document
}

// NewStatus validates the document and wraps it. It fails when the service
// reports the boiler as not connected, so a Status is never partially usable.
func NewStatus(doc *Document) (*Status, error) {
	if doc == nil {
		return nil, errors.New("stokercloud: status document is nil")
	}
	if !doc.NotConnected.present() {
		return nil, &FieldMissingError{Section: SectionDocument, ID: "notconnected"}
	}
	flag, err := doc.NotConnected.Int()
	if err != nil {
		return nil, &FieldFormatError{Section: SectionDocument, ID: "notconnected", Text: doc.NotConnected.text, Err: err}
	}
	if flag != 0 {
		return nil, fmt.Errorf("%w (notconnected=%d)", ErrNotConnected, flag)
	}
	return &Status{doc: doc}, nil
}

// ParseStatus decodes a raw payload and builds a Status from it.
func ParseStatus(data []byte) (*Status, error) {
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}
	return NewStatus(doc)
}

// Document returns the underlying document. Callers must not modify it.
func (s *Status) Document() *Document {
	return s.doc
}

// SerialNumber returns the controller serial.
func (s *Status) SerialNumber() (string, error) {
	if !s.doc.Serial.present() {
		return "", &FieldMissingError{Section: SectionDocument, ID: "serial"}
	}
	return s.doc.Serial.text, nil
}

// Alarm reports whether the controller alarm is raised.
func (s *Status) Alarm() (PowerState, error) {
	return powerState("alarm", s.doc.MiscData.Alarm)
}

// Running reports whether the boiler is running.
func (s *Status) Running() (PowerState, error) {
	return powerState("running", s.doc.MiscData.Running)
}

// State maps miscdata.state.value through the controller state table.
func (s *Status) State() (ControllerState, error) {
	code, err := s.StateCode()
	if err != nil {
		return 0, err
	}
	return ParseControllerState(code)
}

// StateName returns the symbolic state name, e.g. "MOC".
func (s *Status) StateName() (string, error) {
	st, err := s.State()
	if err != nil {
		return "", err
	}
	return st.Name(), nil
}

// StateCode returns the raw state code, e.g. "lng_state_5".
func (s *Status) StateCode() (string, error) {
	return miscReading("state", s.doc.MiscData.State)
}

// Clock returns the controller clock as reported.
func (s *Status) Clock() (string, error) {
	return miscReading("clock", s.doc.MiscData.Clock)
}

// HopperDistanceMax returns miscdata["hopper.distance_max"].
func (s *Status) HopperDistanceMax() (string, error) {
	v := s.doc.MiscData.HopperDistanceMax
	if !v.present() {
		return "", &FieldMissingError{Section: SectionMisc, ID: "hopper.distance_max"}
	}
	return v.text, nil
}

func powerState(id string, v Scalar) (PowerState, error) {
	if !v.present() {
		return 0, &FieldMissingError{Section: SectionMisc, ID: id}
	}
	n, err := v.Int()
	if err != nil {
		return 0, &FieldFormatError{Section: SectionMisc, ID: id, Text: v.text, Err: err}
	}
	switch PowerState(n) {
	case On:
		return On, nil
	case Off:
		return Off, nil
	}
	return 0, &FieldFormatError{Section: SectionMisc, ID: id, Text: v.text, Err: errors.New("expected 0 or 1")}
}

func miscReading(id string, r *Reading) (string, error) {
	if r == nil || !r.Value.present() {
		return "", &FieldMissingError{Section: SectionMisc, ID: id + ".value"}
	}
	return r.Value.text, nil
}

func (s *Status) fields(section string) []Field {
	switch section {
	case SectionFront:
		return s.doc.FrontData
	case SectionBoiler:
		return s.doc.BoilerData
	case SectionHopper:
		return s.doc.HopperData
	case SectionDHW:
		return s.doc.DHWData
	}
	return nil
}

// field resolves a keyed-list record, treating a null value as missing.
func (s *Status) field(section, id string) (Scalar, error) {
	f, ok := lookupField(s.fields(section), id)
	if !ok || !f.Value.present() {
		return Scalar{}, &FieldMissingError{Section: section, ID: id}
	}
	return f.Value, nil
}

func (s *Status) measurement(section, id string, unit Unit) (Value, error) {
	v, err := s.field(section, id)
	if err != nil {
		return Value{}, err
	}
	return toValue(section, id, v, unit, false)
}

func (s *Status) measurementOneDecimal(section, id string, unit Unit) (Value, error) {
	v, err := s.field(section, id)
	if err != nil {
		return Value{}, err
	}
	return toValue(section, id, v, unit, true)
}

func toValue(section, id string, v Scalar, unit Unit, oneDecimal bool) (Value, error) {
	d, err := v.Decimal()
	if err != nil {
		return Value{}, &FieldFormatError{Section: section, ID: id, Text: v.text, Err: err}
	}
	if oneDecimal {
		d = roundOneDecimal(d)
	}
	return Value{Magnitude: d, Unit: unit}, nil
}

// output returns leftoutput["output-N"].val.
func (s *Status) output(n int) (string, error) {
	key := fmt.Sprintf("output-%d", n)
	out, ok := s.doc.LeftOutput[key]
	if !ok || !out.Val.present() {
		return "", &FieldMissingError{Section: SectionLeftOutput, ID: key}
	}
	return out.Val.text, nil
}

func (s *Status) switchOutput(n int) (string, error) {
	v, err := s.output(n)
	if err != nil {
		return "", err
	}
	return strings.ToLower(v), nil
}

func zoneEntry(key string, out *Output) (Scalar, error) {
	if out == nil || !out.Val.present() {
		return Scalar{}, &FieldMissingError{Section: SectionWeatherComp, ID: key}
	}
	return out.Val, nil
}

func zoneTemperature(key string, out *Output) (Value, error) {
	v, err := zoneEntry(key, out)
	if err != nil {
		return Value{}, err
	}
	return toValue(SectionWeatherComp, key, v, Degree, true)
}

func zoneText(key string, v Scalar) (string, error) {
	if !v.present() {
		return "", &FieldMissingError{Section: SectionWeatherComp, ID: key}
	}
	return v.text, nil
}
