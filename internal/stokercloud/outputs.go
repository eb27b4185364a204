package stokercloud

// Left output bank. Pump outputs are lower-cased ("on"/"off"); the rest are
// returned as sent.

// DHWPump returns the hot water pump state (output-1).
func (s *Status) DHWPump() (string, error) {
	return s.switchOutput(1)
}

// BoilerPump returns the boiler pump state (output-2).
func (s *Status) BoilerPump() (string, error) {
	return s.switchOutput(2)
}

// WeatherZone1ValvePosition returns output-3.
func (s *Status) WeatherZone1ValvePosition() (string, error) {
	return s.output(3)
}

// WeatherPump returns the weather compensation pump state (output-4).
func (s *Status) WeatherPump() (string, error) {
	return s.switchOutput(4)
}

// ExhaustFan returns output-5.
func (s *Status) ExhaustFan() (string, error) {
	return s.output(5)
}

// Output6 returns output-6, which has no documented meaning.
func (s *Status) Output6() (string, error) {
	return s.output(6)
}

// CompressorCleaning returns the compressor cleaning actuator state (output-7).
func (s *Status) CompressorCleaning() (string, error) {
	return s.output(7)
}

// Output8 returns output-8, which has no documented meaning.
func (s *Status) Output8() (string, error) {
	return s.output(8)
}

// WeatherPump2 returns the second weather compensation pump state (output-9).
func (s *Status) WeatherPump2() (string, error) {
	return s.switchOutput(9)
}

// Weather compensation zones.

// WeatherZone1Active returns whether weather compensation zone 1 is active, as reported.
func (s *Status) WeatherZone1Active() (string, error) {
	return zoneText("zone1active", s.doc.WeatherComp.Zone1Active)
}

// WeatherZone2Active returns whether weather compensation zone 2 is active, as reported.
func (s *Status) WeatherZone2Active() (string, error) {
	return zoneText("zone2active", s.doc.WeatherComp.Zone2Active)
}

// Zone1FlowWanted returns the requested zone 1 flow temperature.
func (s *Status) Zone1FlowWanted() (Value, error) {
	return zoneTemperature("zone1-wanted", s.doc.WeatherComp.Zone1Wanted)
}

// Zone1FlowCurrent returns the measured zone 1 flow temperature.
func (s *Status) Zone1FlowCurrent() (Value, error) {
	return zoneTemperature("zone1-actual", s.doc.WeatherComp.Zone1Actual)
}

// Zone1ValvePosition returns the zone 1 mixing valve position text.
func (s *Status) Zone1ValvePosition() (string, error) {
	v, err := zoneEntry("zone1-valve", s.doc.WeatherComp.Zone1Valve)
	return v.text, err
}

// Zone1CurrentTemperature returns the zone 1 reference temperature.
func (s *Status) Zone1CurrentTemperature() (Value, error) {
	return zoneTemperature("zone1-actualref", s.doc.WeatherComp.Zone1ActualRef)
}

// Zone1AverageTemperature returns the zone 1 calculated average temperature.
func (s *Status) Zone1AverageTemperature() (Value, error) {
	return zoneTemperature("zone1-calc", s.doc.WeatherComp.Zone1Calc)
}

// Zone2FlowWanted returns the requested zone 2 flow temperature.
func (s *Status) Zone2FlowWanted() (Value, error) {
	return zoneTemperature("zone2-wanted", s.doc.WeatherComp.Zone2Wanted)
}

// Zone2FlowCurrent returns the measured zone 2 flow temperature.
func (s *Status) Zone2FlowCurrent() (Value, error) {
	return zoneTemperature("zone2-actual", s.doc.WeatherComp.Zone2Actual)
}

// Zone2ValvePosition returns the zone 2 mixing valve position text.
func (s *Status) Zone2ValvePosition() (string, error) {
	v, err := zoneEntry("zone2-valve", s.doc.WeatherComp.Zone2Valve)
	return v.text, err
}

// Zone2CurrentTemperature returns the zone 2 reference temperature.
func (s *Status) Zone2CurrentTemperature() (Value, error) {
	return zoneTemperature("zone2-actualref", s.doc.WeatherComp.Zone2ActualRef)
}

// Zone2AverageTemperature returns the zone 2 calculated average temperature.
func (s *Status) Zone2AverageTemperature() (Value, error) {
	return zoneTemperature("zone2-calc", s.doc.WeatherComp.Zone2Calc)
}
