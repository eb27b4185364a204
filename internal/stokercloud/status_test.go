package stokercloud

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "status.json"))
	require.NoError(t, err)
	return data
}

func fixtureStatus(t *testing.T) *Status {
	t.Helper()
	st, err := ParseStatus(loadFixture(t))
	require.NoError(t, err)
	return st
}

func mustValue(t *testing.T, text string, unit Unit) Value {
	t.Helper()
	v, err := NewValue(text, unit)
	require.NoError(t, err)
	return v
}

func TestNewStatus_NotConnectedFlag(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"zero", `{"notconnected": 0}`, nil},
		{"zero as string", `{"notconnected": "0"}`, nil},
		{"one", `{"notconnected": 1}`, ErrNotConnected},
		{"negative", `{"notconnected": -1}`, ErrNotConnected},
		{"large", `{"notconnected": 42}`, ErrNotConnected},
		{"missing", `{}`, ErrFieldMissing},
		{"null", `{"notconnected": null}`, ErrFieldMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := ParseStatus([]byte(tt.payload))
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, st)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, st)
		})
	}
}

func TestNewStatus_RejectsNilAndMalformedFlag(t *testing.T) {
	_, err := NewStatus(nil)
	require.Error(t, err)

	_, err = ParseStatus([]byte(`{"notconnected": "yes"}`))
	var formatErr *FieldFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "notconnected", formatErr.ID)
}

func TestStatus_BoilerTemperatureRoundTrip(t *testing.T) {
	st, err := ParseStatus([]byte(`{"notconnected":0,"frontdata":[{"id":"boilertemp","value":"62.34"}]}`))
	require.NoError(t, err)

	got, err := st.BoilerTemperatureCurrent()
	require.NoError(t, err)
	assert.True(t, got.Magnitude.Equal(decimal.RequireFromString("62.34")), "magnitude = %s", got.Magnitude)
	assert.Equal(t, Degree, got.Unit)
}

func TestStatus_OneDecimalNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`62.345678`, "62.3"},
		{`"62.345678"`, "62.3"},
		{`62.25`, "62.2"},
		{`62.35`, "62.4"},
		{`62.45`, "62.4"},
		{`-0.05`, "0"},
		{`62`, "62"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			payload := `{"notconnected":0,"frontdata":[{"id":"smoketemp","value":` + tt.raw + `}]}`
			st, err := ParseStatus([]byte(payload))
			require.NoError(t, err)

			want := mustValue(t, tt.want, Degree)
			for i := 0; i < 3; i++ {
				got, err := st.SmokeTemperature()
				require.NoError(t, err)
				assert.True(t, got.Equal(want), "SmokeTemperature() = %s, want %s", got, want)
			}
		})
	}
}

func TestStatus_FixtureMeasurements(t *testing.T) {
	st := fixtureStatus(t)

	tests := []struct {
		name string
		get  func() (Value, error)
		want Value
	}{
		{"BoilerTemperatureCurrent", st.BoilerTemperatureCurrent, mustValue(t, "62.34", Degree)},
		{"BoilerTemperatureRequested", st.BoilerTemperatureRequested, mustValue(t, "65", Degree)},
		{"HotWaterTemperatureCurrent", st.HotWaterTemperatureCurrent, mustValue(t, "48.3", Degree)},
		{"HotWaterTemperatureRequested", st.HotWaterTemperatureRequested, mustValue(t, "50", Degree)},
		{"OxygenReference", st.OxygenReference, mustValue(t, "10.5", Percent)},
		{"SmokeTemperature", st.SmokeTemperature, mustValue(t, "121.4", Degree)},
		{"Airflow", st.Airflow, mustValue(t, "34", CubicMetresPerHour)},
		{"HopperDistance", st.HopperDistance, mustValue(t, "22", Percent)},
		{"Pressure", st.Pressure, mustValue(t, "-38", Pascal)},
		{"Exhaust", st.Exhaust, mustValue(t, "41", Percent)},
		{"AshDistance", st.AshDistance, mustValue(t, "0", Percent)},
		{"BoilerKWh", st.BoilerKWh, mustValue(t, "5.9", KWh)},
		{"BoilerPercent", st.BoilerPercent, mustValue(t, "37", Percent)},
		{"OxygenCurrent", st.OxygenCurrent, mustValue(t, "9.8", Percent)},
		{"OxygenLow", st.OxygenLow, mustValue(t, "11", Percent)},
		{"OxygenMid", st.OxygenMid, mustValue(t, "9", Percent)},
		{"OxygenHigh", st.OxygenHigh, mustValue(t, "7", Percent)},
		{"BoilerTemperatureReturn", st.BoilerTemperatureReturn, mustValue(t, "51.2", Degree)},
		{"BoilerTemperatureDropShaft", st.BoilerTemperatureDropShaft, mustValue(t, "58.0", Degree)},
		{"ConsumptionTotal", st.ConsumptionTotal, mustValue(t, "8712", Kilogram)},
		{"ConsumptionDay", st.ConsumptionDay, mustValue(t, "23.7", Kilogram)},
		{"AugerCapacity", st.AugerCapacity, mustValue(t, "187", Gram)},
		{"HopperContent", st.HopperContent, mustValue(t, "142", Kilogram)},
		{"HopperTrip1", st.HopperTrip1, mustValue(t, "354", Kilogram)},
		{"HopperTrip2", st.HopperTrip2, mustValue(t, "1210", Kilogram)},
		{"Power10Percent", st.Power10Percent, mustValue(t, "1.6", KWh)},
		{"Power100Percent", st.Power100Percent, mustValue(t, "16", KWh)},
		{"DHWDifferenceUnder", st.DHWDifferenceUnder, mustValue(t, "5", Degree)},
		{"Zone1FlowWanted", st.Zone1FlowWanted, mustValue(t, "45.3", Degree)},
		{"Zone1FlowCurrent", st.Zone1FlowCurrent, mustValue(t, "44.8", Degree)},
		{"Zone1CurrentTemperature", st.Zone1CurrentTemperature, mustValue(t, "7.4", Degree)},
		{"Zone1AverageTemperature", st.Zone1AverageTemperature, mustValue(t, "6.2", Degree)},
		{"Zone2FlowWanted", st.Zone2FlowWanted, mustValue(t, "0", Degree)},
		{"Zone2FlowCurrent", st.Zone2FlowCurrent, mustValue(t, "21", Degree)},
		{"Zone2CurrentTemperature", st.Zone2CurrentTemperature, mustValue(t, "7.3", Degree)},
		{"Zone2AverageTemperature", st.Zone2AverageTemperature, mustValue(t, "6.2", Degree)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get()
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "%s() = %s, want %s", tt.name, got, tt.want)
		})
	}
}

func TestStatus_FixturePlainAccessors(t *testing.T) {
	st := fixtureStatus(t)

	tests := []struct {
		name string
		get  func() (string, error)
		want string
	}{
		{"SerialNumber", st.SerialNumber, "21467"},
		{"StateName", st.StateName, "MOC"},
		{"StateCode", st.StateCode, "lng_state_5"},
		{"Clock", st.Clock, "14:32"},
		{"HopperDistanceMax", st.HopperDistanceMax, "60"},
		{"DHWPump", st.DHWPump, "off"},
		{"BoilerPump", st.BoilerPump, "on"},
		{"WeatherZone1ValvePosition", st.WeatherZone1ValvePosition, "35"},
		{"WeatherPump", st.WeatherPump, "on"},
		{"ExhaustFan", st.ExhaustFan, "41"},
		{"Output6", st.Output6, "0"},
		{"CompressorCleaning", st.CompressorCleaning, "OFF"},
		{"Output8", st.Output8, "0"},
		{"WeatherPump2", st.WeatherPump2, "off"},
		{"WeatherZone1Active", st.WeatherZone1Active, "1"},
		{"WeatherZone2Active", st.WeatherZone2Active, "0"},
		{"Zone1ValvePosition", st.Zone1ValvePosition, "35"},
		{"Zone2ValvePosition", st.Zone2ValvePosition, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	alarm, err := st.Alarm()
	require.NoError(t, err)
	assert.Equal(t, Off, alarm)

	running, err := st.Running()
	require.NoError(t, err)
	assert.Equal(t, On, running)

	state, err := st.State()
	require.NoError(t, err)
	assert.Equal(t, StatePower, state)
}

func TestStatus_UnknownStateIsExplicit(t *testing.T) {
	st, err := ParseStatus([]byte(`{"notconnected":0,"miscdata":{"state":{"value":"lng_state_999"}}}`))
	require.NoError(t, err)

	_, err = st.State()
	require.ErrorIs(t, err, ErrUnknownState)
	var stateErr *UnknownStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "lng_state_999", stateErr.Code)

	name, err := st.StateName()
	require.ErrorIs(t, err, ErrUnknownState)
	assert.Empty(t, name)

	code, err := st.StateCode()
	require.NoError(t, err)
	assert.Equal(t, "lng_state_999", code)
}

func TestStatus_MissingFieldsNameSectionAndID(t *testing.T) {
	st, err := ParseStatus([]byte(`{"notconnected":0,"frontdata":[{"id":"dhw","value":null}],"boilerdata":[],"leftoutput":{}}`))
	require.NoError(t, err)

	tests := []struct {
		name    string
		call    func() error
		section string
		id      string
	}{
		{"absent record", func() error { _, err := st.BoilerTemperatureCurrent(); return err }, SectionFront, "boilertemp"},
		{"null value", func() error { _, err := st.HotWaterTemperatureCurrent(); return err }, SectionFront, "dhw"},
		{"empty section", func() error { _, err := st.BoilerKWh(); return err }, SectionBoiler, "5"},
		{"missing section", func() error { _, err := st.HopperContent(); return err }, SectionHopper, "1"},
		{"output", func() error { _, err := st.DHWPump(); return err }, SectionLeftOutput, "output-1"},
		{"zone", func() error { _, err := st.Zone1FlowWanted(); return err }, SectionWeatherComp, "zone1-wanted"},
		{"zone flag", func() error { _, err := st.WeatherZone2Active(); return err }, SectionWeatherComp, "zone2active"},
		{"alarm", func() error { _, err := st.Alarm(); return err }, SectionMisc, "alarm"},
		{"state", func() error { _, err := st.State(); return err }, SectionMisc, "state.value"},
		{"serial", func() error { _, err := st.SerialNumber(); return err }, SectionDocument, "serial"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.ErrorIs(t, err, ErrFieldMissing)
			var missing *FieldMissingError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.section, missing.Section)
			assert.Equal(t, tt.id, missing.ID)
		})
	}
}

func TestStatus_ZeroValuedFieldIsFound(t *testing.T) {
	st, err := ParseStatus([]byte(`{"notconnected":0,"frontdata":[{"id":"ashdist","value":0},{"id":"ashdist","value":"9"}]}`))
	require.NoError(t, err)

	got, err := st.AshDistance()
	require.NoError(t, err)
	assert.True(t, got.Magnitude.IsZero(), "first matching record wins, got %s", got)
}

func TestStatus_NumericIDsMatch(t *testing.T) {
	st, err := ParseStatus([]byte(`{"notconnected":0,"boilerdata":[{"id":5,"value":12.5}]}`))
	require.NoError(t, err)

	got, err := st.BoilerKWh()
	require.NoError(t, err)
	assert.True(t, got.Equal(mustValue(t, "12.5", KWh)))
}

func TestStatus_FormatErrors(t *testing.T) {
	st, err := ParseStatus([]byte(`{"notconnected":0,"frontdata":[{"id":"dhw","value":"48,2"}],"miscdata":{"alarm":2,"running":"x"}}`))
	require.NoError(t, err)

	_, err = st.HotWaterTemperatureCurrent()
	var formatErr *FieldFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "48,2", formatErr.Text)

	_, err = st.Alarm()
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "alarm", formatErr.ID)

	_, err = st.Running()
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "running", formatErr.ID)
}

func TestDecodeDocument_RejectsNonScalarValues(t *testing.T) {
	_, err := DecodeDocument([]byte(`{"notconnected":0,"frontdata":[{"id":"dhw","value":{"x":1}}]}`))
	require.Error(t, err)
}
