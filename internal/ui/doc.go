// Package ui provides the Bubble Tea dashboard for a StokerCloud boiler.
//
// # Layout
//
//	┌───────────────────────────────────────────────────────────┐
//	│ stoker  #21467  [MOC] power  ● RUNNING  Clock: 14:32      │ header
//	│ Updated 14:32:05  OFFLINE  <last error>                   │
//	├───────────────────────────────────────────────────────────┤
//	│ Controller                                                │
//	│   State            MOC                                    │ viewport
//	│ Boiler                                                    │
//	│   Temperature      62.34 °C                               │
//	│   ...                                                     │
//	├───────────────────────────────────────────────────────────┤
//	│ r refresh now • T cycle theme • ? toggle help • q quit    │ footer
//	└───────────────────────────────────────────────────────────┘
//
// # Data Flow
//
// The model never talks to the network. A tick re-reads the state.Store
// snapshot the poller fills. The refresh key runs Options.Refresh in a
// command and re-reads the store when it returns.
//
// # Themes
//
// Dracula (default) and Slate. T cycles them and saves the choice with the
// prefs package. Controller states are colored by category: heating,
// ignition, standby, stopped, fault, off.
package ui
