package cmd

import (
	"errors"
	"log"

	"github.com/spigell/web3-navigator/internal/navigator"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "web3-navigator"
)

type Config struct {
	Defaults *navigator.Signals `mapstructure:"defaults"`
	Output   *OutputConfig      `mapstructure:"output"`
}

type OutputConfig struct {
	JSON bool `mapstructure:"json"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "web3-navigator is a cli scorer for choosing between Aztec-style zk rollups, Zama-style FHE stacks, and soundness-first protocol labs",
		RunE: func(_ *cobra.Command, _ []string) error {
			// Bare invocation scores with defaults.
			return score()
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is web3-navigator.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().Bool("log-json", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("log-json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional, but one that exists and does not parse is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
