package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/tradedesk/config"
	"github.com/rustyeddy/tradedesk/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// defaultConfigFile is read when present and --config is not given.
const defaultConfigFile = "tradedesk.yaml"

var rootCmd = &cobra.Command{
	Use:   "tradedesk",
	Short: "A trading journal for prop-firm risk and pair bias",
	Long: `Tradedesk keeps two small collections for a discretionary FX trader:

  - Risk accounts: prop-firm account size, balance and drawdown, the
    per-trade risk amount and how many losing trades are left
  - Trading pairs: weekly and daily bias, a short daily history and
    whether the daily read is still current

Both collections are saved after every change.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var (
	cfgFile string

	cfg *config.Config
	log *logrus.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./"+defaultConfigFile+" when present)")
	pf.String("store", "", "store type: sqlite, badger or memory")
	pf.StringP("db", "d", "", "path to the store")
	pf.String("log-level", "", "log level")
}

// newViper binds the overridable settings to TRADEDESK_* environment
// variables and the persistent flags.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("TRADEDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"store.type": "store",
		"store.path": "db",
		"log.level":  "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind %s: %w", flag, err)
		}
	}
	return v, nil
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	switch {
	case cfgFile != "":
		cfg, err = config.LoadFromFile(cfgFile)
	case fileExists(defaultConfigFile):
		cfg, err = config.LoadFromFile(defaultConfigFile)
	default:
		cfg = config.Default()
	}
	if err != nil {
		return err
	}

	v, err := newViper(cmd)
	if err != nil {
		return err
	}
	overrideString(v, "store.type", &cfg.Store.Type)
	overrideString(v, "store.path", &cfg.Store.Path)
	overrideString(v, "log.level", &cfg.Log.Level)
	overrideString(v, "log.file", &cfg.Log.File)
	overrideString(v, "pairs.unnamed_ttl", &cfg.Pairs.UnnamedTTL)
	overrideString(v, "accounts.default_risk_percentage", &cfg.Accounts.DefaultRiskPercentage)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log = logger.New(cfg.Log.Logger())
	return nil
}

func overrideString(v *viper.Viper, key string, dst *string) {
	if v.IsSet(key) {
		if s := v.GetString(key); s != "" {
			*dst = s
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
