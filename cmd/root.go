package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MohammedMusharraf11/NaukriGraph/internal/dragdrop"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/screening"
)

const (
	app = "naukrigraph"
)

type Config struct {
	Service            *ServiceConfig `mapstructure:"service"`
	JobDescriptionFile string         `mapstructure:"job-description-file"`
	Watch              *WatchConfig   `mapstructure:"watch"`
}

type ServiceConfig struct {
	Endpoint  string        `mapstructure:"endpoint"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user-agent"`
}

type WatchConfig struct {
	Settle time.Duration `mapstructure:"settle"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "naukrigraph screens a resume against a job description using the NaukriGraph service",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("service.endpoint", "NAUKRIGRAPH_ENDPOINT"); err != nil {
		log.Fatalf("binding NAUKRIGRAPH_ENDPOINT environment variable: %v", err)
	}

	viper.SetDefault("service.endpoint", screening.DefaultEndpoint)
	viper.SetDefault("service.timeout", screening.DefaultTimeout)
	viper.SetDefault("watch.settle", dragdrop.DefaultSettle)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is naukrigraph.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Only screening reads the config.
	if screenCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional, but a broken one is not.
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

	if config.Service == nil {
		config.Service = &ServiceConfig{}
	}
	if config.Watch == nil {
		config.Watch = &WatchConfig{}
	}

	return config, nil
}
