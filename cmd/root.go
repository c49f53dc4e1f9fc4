package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/dinechat/internal/api"
	"github.com/zhubert/dinechat/internal/app"
	"github.com/zhubert/dinechat/internal/config"
	"github.com/zhubert/dinechat/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "dinechat",
	Short: "Terminal client for customer messages and friends",
	Long: `dinechat is a TUI for the customer messaging page of the ordering site.
It lists your conversations, shows and answers individual threads, accepts
incoming friend requests and lets you find and add other customers.

Run 'dinechat setup' once to point it at a server and customer account.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to "+logger.DefaultLogPath)
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("dinechat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("dinechat %s\n", version)
}

// loadAccount loads the config and checks that it names a server and customer.
func loadAccount() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.RequireAccount(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadAccount()
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	logger.ComponentLogger("cmd").Info("starting", "version", version, "server", cfg.GetServerURL(), "customer", cfg.GetCustomerID())

	m := app.New(cfg, api.NewClient(cfg), version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
