package cmd

import (
	"fmt"
	"os"

	"twitch-app-api/config"
	"twitch-app-api/logger"
	"twitch-app-api/twitchapi"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configDir  string
	jsonOutput bool
	noTUI      bool

	cfg    config.Config
	client twitchapi.API

	// newClient is replaced in tests with a fake API.
	newClient = func(c config.Config) (twitchapi.API, error) {
		return twitchapi.NewClient(c.ClientOptions()...)
	}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "twitch-app-api",
	Short: "Query the Twitch App add-on catalog",
	Long: `twitch-app-api fetches add-ons, categories and category sections
from the Twitch App (CurseForge) add-on API and prints them.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: bootstrap,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "directory containing the .env config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print records as indented JSON")
	rootCmd.PersistentFlags().BoolVar(&noTUI, "no-tui", false, "do not show a spinner while fetching")
}

// bootstrap handles shared initialization logic for commands.
func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.InitLogger(cfg.LogFile, cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err = newClient(cfg)
	if err != nil {
		logger.Log.Errorw("Failed to create Twitch API client", zap.Error(err))
		return fmt.Errorf("failed to create client: %w", err)
	}

	logger.Log.Debugw("Client ready",
		zap.String("command", cmd.Name()),
		zap.String("base_url", cfg.BaseURL),
		zap.String("user_agent", cfg.UserAgent),
	)
	return nil
}
