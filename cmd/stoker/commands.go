package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/stoker/internal/app"
)

func newLoginCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check credentials by requesting a session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Login(cmd.Context(), optionsFrom(v, cmd))
		},
	}
}

func newStatusCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Fetch the current boiler status once and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.PrintStatus(cmd.Context(), optionsFrom(v, cmd), v.GetBool("json"))
		},
	}
	cmd.Flags().Bool("json", false, "print JSON instead of a table")
	_ = v.BindPFlag("json", cmd.Flags().Lookup("json"))
	return cmd
}

func newWatchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live terminal dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(v, cmd)
			opts.PollEvery = v.GetInt("poll")
			opts.PrefsPath = v.GetString("prefs")
			return app.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().Int("poll", 0, "poll interval in seconds (default from config, 15s)")
	cmd.Flags().String("prefs", "", "preferences file (default ~/.config/stoker/prefs.toml)")
	_ = v.BindPFlag("poll", cmd.Flags().Lookup("poll"))
	_ = v.BindPFlag("prefs", cmd.Flags().Lookup("prefs"))
	return cmd
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Poll in the background and serve the latest status over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(v, cmd)
			opts.Listen = v.GetString("listen")
			opts.PollEvery = v.GetInt("serve-poll")
			return app.Serve(cmd.Context(), opts)
		},
	}
	cmd.Flags().String("listen", "", "listen address (default from config, 127.0.0.1:8089)")
	cmd.Flags().Int("poll", 0, "poll interval in seconds (default from config, 15s)")
	_ = v.BindPFlag("listen", cmd.Flags().Lookup("listen"))
	_ = v.BindPFlag("serve-poll", cmd.Flags().Lookup("poll"))
	return cmd
}
