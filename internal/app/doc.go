// Package app wires configuration, logging, the StokerCloud client, the
// snapshot store and the front ends (dashboard or HTTP endpoint) together.
//
// # Entry Points
//
//   - Run: poller plus Bubble Tea dashboard, logging to the configured file
//   - Serve: poller plus gin HTTP endpoint, logging to stderr
//   - Login: one token refresh, for checking credentials
//   - PrintStatus: one forced fetch printed as a table or JSON
//
// All of them start from LoadConfig, which layers Options over the TOML file
// and requires a user.
//
// # Polling
//
// StartPoller fetches immediately and then every interval. Each tick calls
// FetchStatus with force=false, so ticks faster than the client cache time
// are served from the cache. After a failure the next wait is
// interval * 2^failures, capped at five minutes; the first success resets it.
//
// RefreshNow bypasses the cache and is what the dashboard's refresh key and
// POST /api/refresh call.
//
// A fetch that fails because the caller's context ended is not recorded in
// the store.
package app
