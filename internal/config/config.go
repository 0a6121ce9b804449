package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		API
		Session
		Notifications
	}

	API struct {
		BaseURL string
		Timeout time.Duration
	}
	Session struct {
		DatabasePath string
		KeyFilePath  string // Empty means ~/.athenaeum-session-key
		Secret       string // Auto-generated if empty
	}
	Notifications struct {
		DisplayDuration time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("ATHENAEUM")
	v.AutomaticEnv()
	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("api_timeout", "30s")
	v.SetDefault("session_db_path", DefaultSessionDatabasePath)
	v.SetDefault("session_key_file", "")
	v.SetDefault("session_secret", "")
	v.SetDefault("notification_duration", "4s")

	return &Config{
		API: API{
			BaseURL: v.GetString("API_BASE_URL"),
			Timeout: v.GetDuration("API_TIMEOUT"),
		},
		Session: Session{
			DatabasePath: v.GetString("SESSION_DB_PATH"),
			KeyFilePath:  v.GetString("SESSION_KEY_FILE"),
			Secret:       v.GetString("SESSION_SECRET"),
		},
		Notifications: Notifications{
			DisplayDuration: v.GetDuration("NOTIFICATION_DURATION"),
		},
	}
}
