package stokercloud

// BoilerTemperatureCurrent returns the boiler temperature.
func (s *Status) BoilerTemperatureCurrent() (Value, error) {
	return s.measurement(SectionFront, "boilertemp", Degree)
}

// BoilerTemperatureRequested returns the requested boiler temperature.
func (s *Status) BoilerTemperatureRequested() (Value, error) {
	return s.measurement(SectionFront, "-wantedboilertemp", Degree)
}

// HotWaterTemperatureCurrent returns the domestic hot water temperature, normalized to one decimal.
func (s *Status) HotWaterTemperatureCurrent() (Value, error) {
	return s.measurementOneDecimal(SectionFront, "dhw", Degree)
}

// HotWaterTemperatureRequested returns the requested domestic hot water temperature.
func (s *Status) HotWaterTemperatureRequested() (Value, error) {
	return s.measurement(SectionFront, "dhwwanted", Degree)
}

// OxygenReference returns the oxygen reference.
func (s *Status) OxygenReference() (Value, error) {
	return s.measurement(SectionFront, "refoxygen", Percent)
}

// SmokeTemperature returns the flue gas temperature, normalized to one decimal.
func (s *Status) SmokeTemperature() (Value, error) {
	return s.measurementOneDecimal(SectionFront, "smoketemp", Degree)
}

// Airflow returns the reference airflow.
func (s *Status) Airflow() (Value, error) {
	return s.measurement(SectionFront, "refair", CubicMetresPerHour)
}

// HopperDistance returns the hopper fill distance.
func (s *Status) HopperDistance() (Value, error) {
	return s.measurement(SectionFront, "hopperdistance", Percent)
}

// Pressure returns the draught pressure.
func (s *Status) Pressure() (Value, error) {
	return s.measurement(SectionFront, "pressure", Pascal)
}

// Exhaust returns the exhaust fan output.
func (s *Status) Exhaust() (Value, error) {
	return s.measurement(SectionFront, "exhaust", Percent)
}

// AshDistance returns the ash distance.
func (s *Status) AshDistance() (Value, error) {
	return s.measurement(SectionFront, "ashdist", Percent)
}

// BoilerKWh returns the current boiler output.
func (s *Status) BoilerKWh() (Value, error) {
	return s.measurement(SectionBoiler, "5", KWh)
}

// BoilerPercent returns the current boiler output as a share of nominal power.
func (s *Status) BoilerPercent() (Value, error) {
	return s.measurement(SectionBoiler, "4", Percent)
}

// OxygenCurrent returns the measured oxygen.
func (s *Status) OxygenCurrent() (Value, error) {
	return s.measurement(SectionBoiler, "12", Percent)
}

// OxygenLow returns the oxygen setpoint at low power.
func (s *Status) OxygenLow() (Value, error) {
	return s.measurement(SectionBoiler, "14", Percent)
}

// OxygenMid returns the oxygen setpoint at mid power.
func (s *Status) OxygenMid() (Value, error) {
	return s.measurement(SectionBoiler, "15", Percent)
}

// OxygenHigh returns the oxygen setpoint at high power.
func (s *Status) OxygenHigh() (Value, error) {
	return s.measurement(SectionBoiler, "16", Percent)
}

// BoilerTemperatureReturn returns the return water temperature.
func (s *Status) BoilerTemperatureReturn() (Value, error) {
	return s.measurement(SectionBoiler, "17", Degree)
}

// BoilerTemperatureDropShaft returns the drop shaft temperature, normalized to one decimal.
func (s *Status) BoilerTemperatureDropShaft() (Value, error) {
	return s.measurementOneDecimal(SectionBoiler, "7", Degree)
}

// ConsumptionTotal returns the total pellet consumption.
func (s *Status) ConsumptionTotal() (Value, error) {
	return s.measurement(SectionHopper, "4", Kilogram)
}

// ConsumptionDay returns the pellet consumption in the last 24 hours.
func (s *Status) ConsumptionDay() (Value, error) {
	return s.measurement(SectionHopper, "3", Kilogram)
}

// AugerCapacity returns the auger capacity per revolution cycle.
func (s *Status) AugerCapacity() (Value, error) {
	return s.measurement(SectionHopper, "2", Gram)
}

// HopperContent returns the estimated hopper content.
func (s *Status) HopperContent() (Value, error) {
	return s.measurement(SectionHopper, "1", Kilogram)
}

// HopperTrip1 returns the trip counter 1.
func (s *Status) HopperTrip1() (Value, error) {
	return s.measurement(SectionHopper, "5", Kilogram)
}

// HopperTrip2 returns the trip counter 2.
func (s *Status) HopperTrip2() (Value, error) {
	return s.measurement(SectionHopper, "13", Kilogram)
}

// Power10Percent returns the output at 10% power.
func (s *Status) Power10Percent() (Value, error) {
	return s.measurement(SectionHopper, "7", KWh)
}

// Power100Percent returns the output at 100% power.
func (s *Status) Power100Percent() (Value, error) {
	return s.measurement(SectionHopper, "8", KWh)
}

// DHWDifferenceUnder returns the hot water hysteresis below setpoint.
func (s *Status) DHWDifferenceUnder() (Value, error) {
	return s.measurement(SectionDHW, "3", Degree)
}
