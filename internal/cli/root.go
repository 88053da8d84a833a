// Package cli wires the mstlab commands: run, compare and generate.
//
// Every command gets its own viper instance so the tree can be built and
// executed repeatedly, which the tests rely on.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlath-mst/internal/config"
	"github.com/katalvlaran/lvlath-mst/internal/logger"
)

const envPrefix = "MSTLAB"

var errFlagIsNotRegistered = errors.New("flag is not registered")

// binding ties a command line flag to a dotted config key.
type binding struct {
	flag string
	key  string
}

var rootBindings = []binding{
	{flag: "log-format", key: "log.format"},
	{flag: "log-level", key: "log.level"},
}

type app struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgFile string
	log     zerolog.Logger
}

// NewRootCmd builds the mstlab command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{
		v:   viper.New(),
		cfg: config.NewConfig(),
		log: zerolog.Nop(),
	}

	root := &cobra.Command{
		Use:           "mstlab",
		Short:         "Minimum spanning trees with Kruskal and Prim",
		Long:          "mstlab loads weighted undirected graphs from JSON or YAML files and computes their minimum spanning tree, reporting the total weight and the number of key operations each algorithm performed.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file")
	pf.String("log-format", a.cfg.Log.Format, "logging format [text|json]")
	pf.String("log-level", a.cfg.Log.Level,
		fmt.Sprintf(
			"logging level %s|%s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
			zerolog.LevelErrorValue,
		),
	)

	root.AddCommand(newRunCmd(a), newCompareCmd(a), newGenerateCmd(a))

	return root
}

// load binds the flags of the executing command, reads the optional config
// file and environment, decodes everything into a.cfg and sets up logging.
func (a *app) load(cmd *cobra.Command, bindings []binding) error {
	for _, b := range append(rootBindings, bindings...) {
		flag := cmd.Flags().Lookup(b.flag)
		if flag == nil {
			return fmt.Errorf("lookup flag \"%s\": %w", b.flag, errFlagIsNotRegistered)
		}
		if err := a.v.BindPFlag(b.key, flag); err != nil {
			return fmt.Errorf("bind flag \"%s\": %w", b.key, err)
		}
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading from config file: %w", err)
		}
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	decoderCfg := func(cfg *mapstructure.DecoderConfig) {
		cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
	if err := a.v.Unmarshal(a.cfg, decoderCfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}
	l, err := logger.SetLogLevel(a.cfg.Log.Level, a.cfg.Log.Format, zerolog.SyncWriter(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.log = l

	return nil
}
