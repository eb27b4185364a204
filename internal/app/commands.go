package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/five82/stoker/internal/httpapi"
	"github.com/five82/stoker/internal/logging"
	"github.com/five82/stoker/internal/state"
)

// Login authenticates once and reports the outcome on stdout.
func Login(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Output: opts.stderr()})
	if err != nil {
		return err
	}
	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	if err := client.RefreshToken(ctx); err != nil {
		return fmt.Errorf("login as %s: %w", client.User(), err)
	}
	_, err = fmt.Fprintf(opts.stdout(), "logged in as %s\n", client.User())
	return err
}

// PrintStatus performs one forced fetch and prints the reading catalog, as
// a table or as the same JSON the HTTP endpoint serves.
func PrintStatus(ctx context.Context, opts Options, asJSON bool) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Output: opts.stderr()})
	if err != nil {
		return err
	}
	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	store := &state.Store{}
	if err := RefreshNow(ctx, store, client, logger); err != nil {
		return fmt.Errorf("fetch status: %w", err)
	}
	snap := store.Snapshot()

	if asJSON {
		enc := json.NewEncoder(opts.stdout())
		enc.SetIndent("", "  ")
		return enc.Encode(httpapi.NewStatusView(snap))
	}
	return writeReadings(opts.stdout(), snap.Readings)
}

func writeReadings(w io.Writer, readings []state.Reading) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	group := ""
	for _, r := range readings {
		if r.Group != group {
			if group != "" {
				fmt.Fprintln(tw)
			}
			group = r.Group
			fmt.Fprintf(tw, "%s\n", group)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", r.Label, r.Display())
	}
	return tw.Flush()
}
