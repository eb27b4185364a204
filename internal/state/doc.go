// Package state holds the latest boiler status shared between the poller and
// its readers (dashboard, HTTP API, one-shot CLI).
//
// Store is safe for concurrent use and its zero value is ready. The poller
// calls Update after every fetch; readers call Snapshot, which returns copies
// so rendering never races with the next update.
//
// A failed Update keeps the previous status and readings, records the error
// and increments ConsecutiveFailures. A successful Update clears both. The
// snapshot reports IsOffline once two fetches in a row have failed.
//
// Readings flattens a Status into labelled, grouped display values. Each
// accessor is evaluated independently, so a missing field marks only its own
// reading as unavailable:
//
//	store.Update(status, nil)
//	snap := store.Snapshot()
//	for _, r := range snap.Readings {
//		fmt.Println(r.Group, r.Label, r.Display())
//	}
package state
