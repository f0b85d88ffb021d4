package main

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agiangrant/skinny"
	"github.com/agiangrant/skinny/internal/logger"
)

// app carries what every subcommand needs. The engine is built lazily so
// init works without a config.
type app struct {
	fs afero.Fs
	v  *viper.Viper
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, v: viper.New()}

	a.v.SetEnvPrefix("skinctl")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "skinctl",
		Short:         "Inspect skins, themes and hint resolution",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", skinny.ConfigFile, "Engine configuration file")
	flags.String("theme", "", "Theme file applied over the default skin")
	flags.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	for _, name := range []string{"config", "theme", "log-level"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	cmd.AddCommand(newInitCmd(a))
	cmd.AddCommand(newDumpCmd(a))
	cmd.AddCommand(newResolveCmd(a))
	cmd.AddCommand(newClassesCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// config loads the config file and layers flags and SKINCTL_* variables
// over it.
func (a *app) config() (skinny.Config, error) {
	cfg, err := skinny.LoadConfig(a.fs, a.v.GetString("config"))
	if err != nil {
		return cfg, err
	}
	if a.v.IsSet("theme") {
		cfg.Theme = a.v.GetString("theme")
	}
	if a.v.IsSet("log-level") {
		cfg.LogLevel = a.v.GetString("log-level")
	}
	return cfg, nil
}

func (a *app) engine(cmd *cobra.Command) (*skinny.Engine, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}

	// Inspection runs without transitions.
	cfg.Animations = false

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	return skinny.NewEngine(cfg, skinny.WithFs(a.fs), skinny.WithLogger(log))
}
