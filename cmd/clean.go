package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/dinechat/internal/config"
	"github.com/zhubert/dinechat/internal/logger"
)

var (
	skipConfirm bool
	cleanConfig bool
	logPath     = logger.DefaultLogPath
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log and, optionally, the saved account",
	Long: `Removes the debug log file. With --config the saved config (server URL,
customer ID and session cookie) is removed as well, so the next run needs
'dinechat setup' again.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanConfig, "config", false, "Also remove the saved config file")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	_, logErr := os.Stat(logPath)
	hasLog := logErr == nil
	hasConfig := false
	if cleanConfig {
		_, cfgErr := os.Stat(cfg.Path())
		hasConfig = cfgErr == nil
	}

	if !hasLog && !hasConfig {
		fmt.Println("Nothing to clean.")
		return nil
	}

	fmt.Println("This will remove:")
	if hasLog {
		fmt.Printf("  - %s\n", logPath)
	}
	if hasConfig {
		fmt.Printf("  - %s\n", cfg.Path())
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println()
	fmt.Println("Cleaned:")
	if hasLog {
		removed, err := logger.ClearLog(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error clearing log: %v\n", err)
		} else if removed {
			fmt.Println("  - debug log removed")
		}
	}
	if hasConfig {
		if err := os.Remove(cfg.Path()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error removing config: %v\n", err)
		} else {
			fmt.Println("  - config removed")
		}
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
