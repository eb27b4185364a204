package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/stoker/internal/app"
)

// newRootCmd builds the command tree. Each tree gets its own viper instance
// so flag and environment bindings do not leak between invocations.
func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "stoker",
		Short:         "Monitor a StokerCloud pellet boiler",
		Long:          `stoker reads boiler telemetry from StokerCloud and shows it as a terminal dashboard, a one-shot report or an HTTP endpoint.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default ~/.config/stoker/config.toml)")
	flags.String("user", "", "StokerCloud user name")
	flags.String("password", "", "StokerCloud password")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("user", flags.Lookup("user"))
	_ = v.BindPFlag("password", flags.Lookup("password"))
	_ = v.BindPFlag("log-level", flags.Lookup("log-level"))

	_ = v.BindEnv("user", "STOKERCLOUD_USER")
	_ = v.BindEnv("password", "STOKERCLOUD_PASSWORD")
	_ = v.BindEnv("config", "STOKER_CONFIG")

	root.AddCommand(
		newLoginCmd(v),
		newStatusCmd(v),
		newWatchCmd(v),
		newServeCmd(v),
	)
	return root
}

// optionsFrom collects the values every subcommand shares. Flags win over
// environment variables, which win over the config file.
func optionsFrom(v *viper.Viper, cmd *cobra.Command) app.Options {
	return app.Options{
		ConfigPath: v.GetString("config"),
		User:       v.GetString("user"),
		Password:   v.GetString("password"),
		LogLevel:   v.GetString("log-level"),
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}
}
