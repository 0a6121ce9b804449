package config

// Default endpoints and paths
const (
	// DefaultAPIBaseURL is the Athenaeum backend for local development
	DefaultAPIBaseURL = "http://127.0.0.1:8000"

	// DefaultSessionDatabasePath is the default path for the session database
	DefaultSessionDatabasePath = "./athenaeum-session.db"
)
