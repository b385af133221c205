package bootstrap

// Version is set via -X flag at build time
var Version = "dev"

// Log Messages
const (
	LogMsgShuttingDownServer   = "Shutting down server"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
)
