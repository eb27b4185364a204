// Package stokercloud provides a client for the StokerCloud telemetry
// service of biomass boiler controllers.
//
// # Overview
//
// The package has two layers:
//
//   - client.go: session handling (login, token refresh, cached status fetch)
//   - status.go, readings.go, outputs.go: a typed view over one status document
//
// Supporting files hold the document schema (document.go), unit-tagged values
// (value.go), the controller state table (controller_state.go) and error types
// (errors.go).
//
// # Client Usage
//
//	client, err := stokercloud.NewClient(stokercloud.ClientOptions{User: "my-boiler"})
//	if err != nil {
//		return err
//	}
//
//	status, err := client.FetchStatus(ctx, false)
//	if err != nil {
//		return err
//	}
//	temp, err := status.BoilerTemperatureCurrent()
//
// # Endpoints
//
//   - GET v2/dataout2/login.php?user=NAME: returns {token, credentials}
//   - GET v16bckbeta/dataout2/controllerdata2.php?screen=SELECTOR&token=TOKEN
//
// The screen selector is a fixed list of field codes and is not configurable.
//
// # Token Handling
//
// The client logs in lazily. A fetch with no token, or one the status endpoint
// answers with 401/403, drops the token, logs in once and retries once. A
// second invalid-token signal in the same fetch is returned as an error
// wrapping ErrTokenInvalid.
//
// # Caching
//
// FetchStatus serves the last document while it is no older than the cache
// time (10s by default, inclusive). CacheTime: CacheFor(0) fetches on every
// call. force=true or Invalidate bypass the cache. The cache holds a single document which is replaced wholesale.
//
// # Values and Rounding
//
// Numeric fields are parsed from their literal JSON text into exact decimals
// (github.com/shopspring/decimal). Fields the controller reports with
// excess precision (hot water, smoke and drop shaft temperatures, and the
// weather compensation zone temperatures) are rounded to one decimal place
// with round half to even applied to the decimal text: 62.345678 -> 62.3,
// 62.25 -> 62.2, 62.35 -> 62.4. Only '.' is accepted as decimal separator.
//
// Values compare with Value.Equal: magnitudes numerically, units by identity.
//
// # Errors
//
//   - ErrNotConnected: the service reports the boiler offline (NewStatus)
//   - ErrTokenInvalid: re-authentication did not help
//   - *FieldMissingError (ErrFieldMissing): section/id absent or null
//   - *FieldFormatError: field present but not interpretable
//   - *UnknownStateError (ErrUnknownState): state code outside the table
//   - *HTTPError: non-success HTTP status
//
// Transport and decode failures are wrapped with fmt.Errorf and returned
// unchanged otherwise.
//
// # Thread Safety
//
// Client serializes FetchStatus, RefreshToken and the cache accessors with a
// mutex; a slow request blocks other callers of the same Client. Status
// values are immutable and safe to share.
package stokercloud
