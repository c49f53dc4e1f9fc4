package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/dinechat/internal/config"
	"github.com/zhubert/dinechat/internal/ui"
)

const (
	serverURLCharLimit  = 256
	customerIDCharLimit = 19
	cookieCharLimit     = 4096
	setupFormWidth      = 60
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the server and customer account",
	Long: `Prompts for the server URL, your customer ID and optionally the session
cookie of a logged-in browser, then writes them to ~/.dinechat/config.json.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues holds the raw form input before it is applied to the config.
type setupValues struct {
	serverURL     string
	customerID    string
	sessionCookie string
	notifications bool
}

func setupValuesFrom(cfg *config.Config) *setupValues {
	v := &setupValues{
		serverURL:     cfg.ServerURL,
		sessionCookie: cfg.SessionCookie,
		notifications: cfg.NotificationsEnabled,
	}
	if cfg.CustomerID > 0 {
		v.customerID = strconv.FormatInt(cfg.CustomerID, 10)
	}
	return v
}

func validateServerURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("server URL is required")
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("enter a full http:// or https:// URL")
	}
	return nil
}

func validateCustomerID(s string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return errors.New("customer ID must be a positive number")
	}
	return nil
}

func newSetupForm(v *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Server URL").
				Placeholder("http://localhost:5000").
				CharLimit(serverURLCharLimit).
				Validate(validateServerURL).
				Value(&v.serverURL),
			huh.NewInput().
				Title("Customer ID").
				Placeholder("42").
				CharLimit(customerIDCharLimit).
				Validate(validateCustomerID).
				Value(&v.customerID),
			huh.NewInput().
				Title("Session cookie").
				Description("Optional. Sent as the Cookie header on every request.").
				CharLimit(cookieCharLimit).
				EchoMode(huh.EchoModePassword).
				Value(&v.sessionCookie),
			huh.NewConfirm().
				Title("Desktop notifications").
				Description("Notify when a friend request is accepted while the terminal is in the background.").
				Value(&v.notifications),
		),
	).WithTheme(ui.FormTheme()).
		WithWidth(setupFormWidth)
}

// applySetup validates v and copies it into cfg.
func applySetup(cfg *config.Config, v *setupValues) error {
	if err := validateServerURL(v.serverURL); err != nil {
		return err
	}
	if err := validateCustomerID(v.customerID); err != nil {
		return err
	}
	id, _ := strconv.ParseInt(strings.TrimSpace(v.customerID), 10, 64)

	cfg.SetServerURL(strings.TrimRight(strings.TrimSpace(v.serverURL), "/"))
	cfg.SetCustomerID(id)
	cfg.SetSessionCookie(strings.TrimSpace(v.sessionCookie))
	cfg.SetNotificationsEnabled(v.notifications)
	return cfg.Validate()
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	v := setupValuesFrom(cfg)
	if err := newSetupForm(v).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Aborted.")
			return nil
		}
		return fmt.Errorf("error running setup form: %w", err)
	}

	if err := applySetup(cfg, v); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}
	fmt.Printf("Saved %s\n", cfg.Path())
	return nil
}
