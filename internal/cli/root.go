// Package cli implements the members command line interface.
package cli

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	logger  zerolog.Logger
}

// NewRootCmd builds the members command tree with its own configuration,
// so several trees can coexist in one process.
func NewRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	rootCmd := &cobra.Command{
		Use:   "members",
		Short: "Load member rosters into a typed collection",
		Long: `members reads a YAML roster and adds every entry to a collection that only
accepts members. Entries that are not members are reported as soon as they are
added, never later when the roster is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .members.yaml)")
	flags.StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	flags.Bool("strict", true, "fail on the first roster entry that is not a member")
	flags.Bool("unique", false, "drop repeated members, keeping the first occurrence")
	flags.String("sort", "none", "sort members by name (none, asc, desc)")

	for _, name := range []string{"log-level", "strict", "unique", "sort"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(newLoadCmd(a))

	return rootCmd
}

func (a *app) init(stderr io.Writer) error {
	if err := readConfigFile(a.v, a.cfgFile); err != nil {
		return err
	}

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}
