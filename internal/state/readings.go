package state

import (
	"github.com/five82/stoker/internal/stokercloud"
)

// Reading groups.
const (
	GroupController = "Controller"
	GroupBoiler     = "Boiler"
	GroupCombustion = "Combustion"
	GroupHotWater   = "Hot water"
	GroupHopper     = "Hopper"
	GroupOutputs    = "Outputs"
	GroupWeather    = "Weather compensation"
)

// Reading is one rendered status field. A field that could not be read keeps
// its error instead of a value so the rest of the catalog still renders.
type Reading struct {
	Group string
	Label string
	Key   string
	Text  string
	Unit  stokercloud.Unit
	Err   error
}

// Display returns the reading text with its unit symbol, or "n/a" on error.
func (r Reading) Display() string {
	if r.Err != nil {
		return "n/a"
	}
	if r.Unit == "" {
		return r.Text
	}
	return r.Text + " " + r.Unit.Symbol()
}

type catalogEntry struct {
	group string
	label string
	key   string
	read  func(*stokercloud.Status) (string, stokercloud.Unit, error)
}

func value(fn func(*stokercloud.Status) (stokercloud.Value, error)) func(*stokercloud.Status) (string, stokercloud.Unit, error) {
	return func(s *stokercloud.Status) (string, stokercloud.Unit, error) {
		v, err := fn(s)
		if err != nil {
			return "", "", err
		}
		return v.Magnitude.String(), v.Unit, nil
	}
}

func text(fn func(*stokercloud.Status) (string, error)) func(*stokercloud.Status) (string, stokercloud.Unit, error) {
	return func(s *stokercloud.Status) (string, stokercloud.Unit, error) {
		v, err := fn(s)
		return v, "", err
	}
}

func power(fn func(*stokercloud.Status) (stokercloud.PowerState, error)) func(*stokercloud.Status) (string, stokercloud.Unit, error) {
	return func(s *stokercloud.Status) (string, stokercloud.Unit, error) {
		v, err := fn(s)
		if err != nil {
			return "", "", err
		}
		return v.String(), "", nil
	}
}

var catalog = []catalogEntry{
	{GroupController, "Serial", "serial", text((*stokercloud.Status).SerialNumber)},
	{GroupController, "State", "state", text((*stokercloud.Status).StateName)},
	{GroupController, "State code", "state_code", text((*stokercloud.Status).StateCode)},
	{GroupController, "Clock", "clock", text((*stokercloud.Status).Clock)},
	{GroupController, "Alarm", "alarm", power((*stokercloud.Status).Alarm)},
	{GroupController, "Running", "running", power((*stokercloud.Status).Running)},

	{GroupBoiler, "Temperature", "boiler_temperature_current", value((*stokercloud.Status).BoilerTemperatureCurrent)},
	{GroupBoiler, "Requested", "boiler_temperature_requested", value((*stokercloud.Status).BoilerTemperatureRequested)},
	{GroupBoiler, "Return", "boiler_temperature_return", value((*stokercloud.Status).BoilerTemperatureReturn)},
	{GroupBoiler, "Drop shaft", "boiler_temperature_drop_shaft", value((*stokercloud.Status).BoilerTemperatureDropShaft)},
	{GroupBoiler, "Power", "boiler_kwh", value((*stokercloud.Status).BoilerKWh)},
	{GroupBoiler, "Power level", "boiler_percent", value((*stokercloud.Status).BoilerPercent)},
	{GroupBoiler, "Power at 10%", "power_10_percent", value((*stokercloud.Status).Power10Percent)},
	{GroupBoiler, "Power at 100%", "power_100_percent", value((*stokercloud.Status).Power100Percent)},

	{GroupCombustion, "Oxygen", "oxygen_current", value((*stokercloud.Status).OxygenCurrent)},
	{GroupCombustion, "Oxygen reference", "oxygen_reference", value((*stokercloud.Status).OxygenReference)},
	{GroupCombustion, "Oxygen low", "oxygen_low", value((*stokercloud.Status).OxygenLow)},
	{GroupCombustion, "Oxygen mid", "oxygen_mid", value((*stokercloud.Status).OxygenMid)},
	{GroupCombustion, "Oxygen high", "oxygen_high", value((*stokercloud.Status).OxygenHigh)},
	{GroupCombustion, "Smoke", "smoke_temperature", value((*stokercloud.Status).SmokeTemperature)},
	{GroupCombustion, "Airflow", "airflow", value((*stokercloud.Status).Airflow)},
	{GroupCombustion, "Exhaust", "exhaust", value((*stokercloud.Status).Exhaust)},
	{GroupCombustion, "Pressure", "pressure", value((*stokercloud.Status).Pressure)},
	{GroupCombustion, "Ash distance", "ash_distance", value((*stokercloud.Status).AshDistance)},

	{GroupHotWater, "Temperature", "hot_water_temperature_current", value((*stokercloud.Status).HotWaterTemperatureCurrent)},
	{GroupHotWater, "Requested", "hot_water_temperature_requested", value((*stokercloud.Status).HotWaterTemperatureRequested)},
	{GroupHotWater, "Difference under", "dhw_difference_under", value((*stokercloud.Status).DHWDifferenceUnder)},

	{GroupHopper, "Content", "hopper_content", value((*stokercloud.Status).HopperContent)},
	{GroupHopper, "Distance", "hopper_distance", value((*stokercloud.Status).HopperDistance)},
	{GroupHopper, "Distance max", "hopper_distance_max", text((*stokercloud.Status).HopperDistanceMax)},
	{GroupHopper, "Consumption today", "consumption_day", value((*stokercloud.Status).ConsumptionDay)},
	{GroupHopper, "Consumption total", "consumption_total", value((*stokercloud.Status).ConsumptionTotal)},
	{GroupHopper, "Auger capacity", "auger_capacity", value((*stokercloud.Status).AugerCapacity)},
	{GroupHopper, "Trip 1", "hopper_trip_1", value((*stokercloud.Status).HopperTrip1)},
	{GroupHopper, "Trip 2", "hopper_trip_2", value((*stokercloud.Status).HopperTrip2)},

	{GroupOutputs, "Hot water pump", "dhw_pump", text((*stokercloud.Status).DHWPump)},
	{GroupOutputs, "Boiler pump", "boiler_pump", text((*stokercloud.Status).BoilerPump)},
	{GroupOutputs, "Zone 1 valve output", "weather_zone1_valve_position", text((*stokercloud.Status).WeatherZone1ValvePosition)},
	{GroupOutputs, "Weather pump", "weather_pump", text((*stokercloud.Status).WeatherPump)},
	{GroupOutputs, "Weather pump 2", "weather_pump_2", text((*stokercloud.Status).WeatherPump2)},
	{GroupOutputs, "Exhaust fan", "exhaust_fan", text((*stokercloud.Status).ExhaustFan)},
	{GroupOutputs, "Compressor cleaning", "compressor_cleaning", text((*stokercloud.Status).CompressorCleaning)},
	{GroupOutputs, "Output 6", "output_6", text((*stokercloud.Status).Output6)},
	{GroupOutputs, "Output 8", "output_8", text((*stokercloud.Status).Output8)},

	{GroupWeather, "Zone 1 active", "weather_zone1_active", text((*stokercloud.Status).WeatherZone1Active)},
	{GroupWeather, "Zone 1 flow wanted", "zone1_flow_wanted", value((*stokercloud.Status).Zone1FlowWanted)},
	{GroupWeather, "Zone 1 flow", "zone1_flow_current", value((*stokercloud.Status).Zone1FlowCurrent)},
	{GroupWeather, "Zone 1 valve", "zone1_valve_position", text((*stokercloud.Status).Zone1ValvePosition)},
	{GroupWeather, "Zone 1 outdoor", "zone1_current_temperature", value((*stokercloud.Status).Zone1CurrentTemperature)},
	{GroupWeather, "Zone 1 outdoor avg", "zone1_average_temperature", value((*stokercloud.Status).Zone1AverageTemperature)},
	{GroupWeather, "Zone 2 active", "weather_zone2_active", text((*stokercloud.Status).WeatherZone2Active)},
	{GroupWeather, "Zone 2 flow wanted", "zone2_flow_wanted", value((*stokercloud.Status).Zone2FlowWanted)},
	{GroupWeather, "Zone 2 flow", "zone2_flow_current", value((*stokercloud.Status).Zone2FlowCurrent)},
	{GroupWeather, "Zone 2 valve", "zone2_valve_position", text((*stokercloud.Status).Zone2ValvePosition)},
	{GroupWeather, "Zone 2 outdoor", "zone2_current_temperature", value((*stokercloud.Status).Zone2CurrentTemperature)},
	{GroupWeather, "Zone 2 outdoor avg", "zone2_average_temperature", value((*stokercloud.Status).Zone2AverageTemperature)},
}

// Groups returns the reading groups in display order.
func Groups() []string {
	return []string{GroupController, GroupBoiler, GroupCombustion, GroupHotWater, GroupHopper, GroupOutputs, GroupWeather}
}

// BuildReadings evaluates every catalog entry against status. A nil status
// yields no readings.
func BuildReadings(status *stokercloud.Status) []Reading {
	if status == nil {
		return nil
	}
	out := make([]Reading, 0, len(catalog))
	for _, entry := range catalog {
		txt, unit, err := entry.read(status)
		out = append(out, Reading{
			Group: entry.group,
			Label: entry.label,
			Key:   entry.key,
			Text:  txt,
			Unit:  unit,
			Err:   err,
		})
	}
	return out
}

// Find returns the reading with the given key.
func Find(readings []Reading, key string) (Reading, bool) {
	for _, r := range readings {
		if r.Key == key {
			return r, true
		}
	}
	return Reading{}, false
}
