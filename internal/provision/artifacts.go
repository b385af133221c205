package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kavia-common/gaming-database/internal/logger"
)

// writeArtifacts persists the connection-info file and the viewer env
// file. Failures are logged and returned as warnings; the database state
// is already committed by the time this runs.
func (s *Service) writeArtifacts(ctx context.Context) []string {
	log := logger.FromContext(ctx)
	var warnings []string

	if err := s.writeConnectionInfo(); err != nil {
		log.Warn("Could not save connection info", "error", err)
		warnings = append(warnings, fmt.Sprintf("connection info: %v", err))
	} else {
		log.Info("Connection information saved", "path", s.cfg.ConnectionInfoPath)
	}

	if err := s.writeViewerEnv(); err != nil {
		log.Warn("Could not save viewer environment file", "error", err)
		warnings = append(warnings, fmt.Sprintf("viewer env: %v", err))
	} else {
		log.Info("Viewer environment saved", "path", s.cfg.ViewerEnvPath)
	}

	return warnings
}

// writeConnectionInfo writes a human-readable summary of how to reach the
// database file.
func (s *Service) writeConnectionInfo() error {
	content := fmt.Sprintf(
		"# SQLite connection methods:\n"+
			"# Connection string: %s\n"+
			"# File path: %s\n"+
			"# CLI: sqlite3 %s\n",
		s.cfg.DBConnString(), s.cfg.DBPath, s.cfg.DBPath)

	return os.WriteFile(s.cfg.ConnectionInfoPath, []byte(content), 0644)
}

// writeViewerEnv writes the shell-exportable env file the external
// db_visualizer sources to find the database.
func (s *Service) writeViewerEnv() error {
	dir := filepath.Dir(s.cfg.ViewerEnvPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	content := fmt.Sprintf("export SQLITE_DB=%q\n", s.cfg.DBPath)
	return os.WriteFile(s.cfg.ViewerEnvPath, []byte(content), 0644)
}
