package httpapi

import (
	"time"

	"github.com/five82/stoker/internal/state"
)

// StatusView is the JSON shape of a snapshot.
type StatusView struct {
	Serial              string        `json:"serial,omitempty"`
	State               string        `json:"state,omitempty"`
	UpdatedAt           time.Time     `json:"updated_at"`
	Offline             bool          `json:"offline"`
	ConsecutiveFailures int           `json:"consecutive_failures"`
	Error               string        `json:"error,omitempty"`
	Readings            []ReadingView `json:"readings"`
}

// ReadingView is one catalog reading. Value is the exact decimal text.
type ReadingView struct {
	Group string `json:"group"`
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	Unit  string `json:"unit,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewStatusView flattens a snapshot for encoding.
func NewStatusView(snap state.Snapshot) StatusView {
	view := StatusView{
		UpdatedAt:           snap.LastUpdated,
		Offline:             snap.IsOffline(),
		ConsecutiveFailures: snap.ConsecutiveFailures,
		Readings:            make([]ReadingView, 0, len(snap.Readings)),
	}
	if snap.LastError != nil {
		view.Error = snap.LastError.Error()
	}
	if r, ok := state.Find(snap.Readings, "serial"); ok && r.Err == nil {
		view.Serial = r.Text
	}
	if r, ok := state.Find(snap.Readings, "state"); ok && r.Err == nil {
		view.State = r.Text
	}
	for _, r := range snap.Readings {
		rv := ReadingView{
			Group: r.Group,
			Key:   r.Key,
			Label: r.Label,
			Unit:  string(r.Unit),
		}
		if r.Err != nil {
			rv.Error = r.Err.Error()
		} else {
			rv.Value = r.Text
		}
		view.Readings = append(view.Readings, rv)
	}
	return view
}
