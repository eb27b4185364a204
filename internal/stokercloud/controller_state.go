package stokercloud

import "strings"

// ControllerState is the operating mode reported in miscdata.state.
type ControllerState int

const (
	StateIgnition1 ControllerState = iota + 1
	StateIgnition2
	StatePower
	StateHotWater
	StateStoppedTempReached
	StateIgnitionFault
	StateOff
	StateStoppedNoFuel
	StateStandbySchedule
	StateStandbyTempReached
)

type stateInfo struct {
	code        string
	name        string
	description string
}

// states maps every documented state code. Codes outside this table are
// reported through UnknownStateError.
var states = map[ControllerState]stateInfo{
	StateIgnition1:          {"lng_state_2", "ROZPALANIE_1", "ignition 1"},
	StateIgnition2:          {"lng_state_4", "ROZPALANIE_2", "ignition 2"},
	StatePower:              {"lng_state_5", "MOC", "power"},
	StateHotWater:           {"lng_state_7", "CWU", "hot water"},
	StateStoppedTempReached: {"lng_state_9", "ZATRZYM_TempOsiag", "stopped, temperature reached"},
	StateIgnitionFault:      {"lng_state_13", "BLAD_ROZPAL", "ignition failed"},
	StateOff:                {"lng_state_14", "WYLACZONY", "off"},
	StateStoppedNoFuel:      {"lng_state_20", "ZATRZYM_BrakPelletu", "stopped, out of pellets"},
	StateStandbySchedule:    {"lng_state_23", "CZUW_Harmon", "standby, schedule"},
	StateStandbyTempReached: {"lng_state_25", "CZUW_TempOsiag", "standby, temperature reached"},
}

var stateByCode = func() map[string]ControllerState {
	m := make(map[string]ControllerState, len(states))
	for st, info := range states {
		m[info.code] = st
	}
	return m
}()

// ParseControllerState maps a wire code such as "lng_state_5" to its state.
func ParseControllerState(code string) (ControllerState, error) {
	if st, ok := stateByCode[strings.TrimSpace(code)]; ok {
		return st, nil
	}
	return 0, &UnknownStateError{Code: code}
}

// ControllerStates returns every known state in declaration order.
func ControllerStates() []ControllerState {
	out := make([]ControllerState, 0, len(states))
	for st := StateIgnition1; st <= StateStandbyTempReached; st++ {
		out = append(out, st)
	}
	return out
}

// Code returns the wire code, e.g. "lng_state_5".
func (s ControllerState) Code() string {
	return states[s].code
}

// Name returns the controller's symbolic name, e.g. "MOC".
func (s ControllerState) Name() string {
	return states[s].name
}

func (s ControllerState) String() string {
	if info, ok := states[s]; ok {
		return info.description
	}
	return "unknown"
}
