package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	perrors "github.com/zhubert/dinechat/internal/errors"
)

// Environment variables that override the file without being written back to it.
const (
	EnvServerURL     = "DINECHAT_SERVER_URL"
	EnvCustomerID    = "DINECHAT_CUSTOMER_ID"
	EnvSessionCookie = "DINECHAT_SESSION_COOKIE"
)

// DefaultRequestTimeout bounds every backend call when the config leaves it unset.
const DefaultRequestTimeout = 5 * time.Second

var validate = validator.New()

// Config holds the application configuration
type Config struct {
	ServerURL             string `json:"server_url,omitempty" validate:"omitempty,url"`
	CustomerID            int64  `json:"customer_id,omitempty" validate:"gte=0"`
	SessionCookie         string `json:"session_cookie,omitempty"`                                   // Forwarded verbatim as the Cookie header
	RequestTimeoutSeconds int    `json:"request_timeout_seconds,omitempty" validate:"gte=0,lte=120"` // 0 means DefaultRequestTimeout
	NotificationsEnabled  bool   `json:"notifications_enabled,omitempty"`                            // Desktop notification when a friend request is accepted

	env      envOverrides
	mu       sync.RWMutex
	filePath string
}

type envOverrides struct {
	ServerURL     string `validate:"omitempty,url"`
	CustomerID    int64  `validate:"gte=0"`
	SessionCookie string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dinechat"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist.
// Values from the environment (and a .env file in the working directory)
// take precedence over the file.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path, ".env")
}

// LoadFrom reads the config at path and applies overrides from envFile (if it
// exists) and the process environment.
func LoadFrom(path, envFile string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, perrors.ConfigLoadFailed(path, err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, perrors.ConfigLoadFailed(path, err)
		}
	}

	if err := cfg.loadEnv(envFile); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnv is NOT thread-safe; it only runs from LoadFrom before the Config is shared.
func (c *Config) loadEnv(envFile string) error {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			// godotenv.Load never overwrites variables already set in the process
			if err := godotenv.Load(envFile); err != nil {
				return perrors.ConfigLoadFailed(envFile, err)
			}
		}
	}

	c.env.ServerURL = os.Getenv(EnvServerURL)
	c.env.SessionCookie = os.Getenv(EnvSessionCookie)
	if raw := os.Getenv(EnvCustomerID); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return perrors.ConfigInvalid(fmt.Sprintf("%s must be a number, got %q", EnvCustomerID, raw))
		}
		c.env.CustomerID = id
	}
	return nil
}

// Validate checks field formats. It does not require the account fields;
// see RequireAccount for that.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := validate.Struct(c); err != nil {
		return perrors.ConfigInvalid(err.Error())
	}
	if err := validate.Struct(c.env); err != nil {
		return perrors.ConfigInvalid("environment: " + err.Error())
	}
	return nil
}

// RequireAccount reports whether the server and customer are known, which
// the messaging client needs before it can issue any request.
func (c *Config) RequireAccount() error {
	if c.GetServerURL() == "" {
		return perrors.ConfigInvalid("no server URL configured (run `dinechat setup` or set " + EnvServerURL + ")")
	}
	if c.GetCustomerID() <= 0 {
		return perrors.ConfigInvalid("no customer ID configured (run `dinechat setup` or set " + EnvCustomerID + ")")
	}
	return nil
}

// Save writes the config to disk. Environment overrides are not persisted.
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filePath == "" {
		path, err := configPath()
		if err != nil {
			return perrors.ConfigSaveFailed("~/.dinechat/config.json", err)
		}
		c.filePath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0600); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file the config is loaded from and saved to
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetServerURL returns the backend base URL
func (c *Config) GetServerURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.env.ServerURL != "" {
		return c.env.ServerURL
	}
	return c.ServerURL
}

// SetServerURL sets the backend base URL
func (c *Config) SetServerURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ServerURL = url
}

// GetCustomerID returns the customer the client acts as
func (c *Config) GetCustomerID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.env.CustomerID > 0 {
		return c.env.CustomerID
	}
	return c.CustomerID
}

// SetCustomerID sets the customer the client acts as
func (c *Config) SetCustomerID(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CustomerID = id
}

// GetSessionCookie returns the cookie forwarded with every request
func (c *Config) GetSessionCookie() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.env.SessionCookie != "" {
		return c.env.SessionCookie
	}
	return c.SessionCookie
}

// SetSessionCookie sets the cookie forwarded with every request
func (c *Config) SetSessionCookie(cookie string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SessionCookie = cookie
}

// GetRequestTimeout returns the per-request timeout
func (c *Config) GetRequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.RequestTimeoutSeconds <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// SetRequestTimeoutSeconds sets the per-request timeout; 0 restores the default
func (c *Config) SetRequestTimeoutSeconds(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RequestTimeoutSeconds = seconds
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
