package config

// Default configuration values
const (
	DefaultPort        = 5001
	DefaultLogLevel    = "INFO"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"

	DefaultDBName             = "myapp.db"
	DefaultConnectionInfoFile = "db_connection.txt"
	DefaultViewerEnvFile      = "db_visualizer/sqlite.env"
)

// ServiceName identifies this service in health responses and logs
const ServiceName = "gaming_database"
