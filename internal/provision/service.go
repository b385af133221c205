package provision

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kavia-common/gaming-database/internal/config"
	"github.com/kavia-common/gaming-database/internal/database"
	"github.com/kavia-common/gaming-database/internal/database/schema"
	"github.com/kavia-common/gaming-database/internal/database/sqlite"
	"github.com/kavia-common/gaming-database/internal/domain"
	"github.com/kavia-common/gaming-database/internal/logger"
	"github.com/kavia-common/gaming-database/internal/metrics"
)

// Result reports what a provisioning run produced. Warnings collect
// non-fatal failures (artifact writes); anything fatal to the seed
// transaction is returned as an error instead.
type Result struct {
	TableCount  int
	AppInfoRows int
	Warnings    []string
}

// repositoryDB is the part of *sql.DB the seeding step needs.
type repositoryDB interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Service provisions the datastore: schema, indices, seed rows, and the
// connection artifacts consumed by external tooling.
type Service struct {
	cfg *config.Config
}

// NewService creates a new provisioning service
func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Run converges the database file to the expected schema and seed state.
// Safe to call any number of times. Schema creation and seeding run in one
// transaction: a crash mid-run leaves either the full seed state of this
// run or none of it.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info("Starting SQLite setup", "path", s.cfg.DBPath)

	db, err := database.Open(s.cfg.DBPath)
	if err != nil {
		metrics.ProvisionRuns.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, err
	}
	defer db.Close()

	if err := s.seed(ctx, db); err != nil {
		metrics.ProvisionRuns.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, err
	}

	result := &Result{}

	// Post-commit statistics, matching what operators expect to see.
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'`,
	).Scan(&result.TableCount); err != nil {
		return nil, fmt.Errorf("failed to count tables: %w", err)
	}

	appInfo := sqlite.NewAppInfoRepository(db)
	if result.AppInfoRows, err = appInfo.Count(ctx); err != nil {
		return nil, err
	}

	// Artifact writes are best-effort: the schema is already committed,
	// so a failed write demotes to a warning.
	result.Warnings = s.writeArtifacts(ctx)

	metrics.ProvisionRuns.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.Info("SQLite setup complete",
		"path", s.cfg.DBPath,
		"tables", result.TableCount,
		"app_info_records", result.AppInfoRows,
		"warnings", len(result.Warnings))
	return result, nil
}

// seed creates tables and indices and inserts seed rows inside a single
// transaction.
func (s *Service) seed(ctx context.Context, db repositoryDB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	defer sqlite.SafeRollback(ctx, tx)

	if _, err := tx.ExecContext(ctx, schema.SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	appInfoRepo := sqlite.NewAppInfoRepository(tx)
	userRepo := sqlite.NewUserRepository(tx)
	gameRepo := sqlite.NewGameRepository(tx)
	scoreRepo := sqlite.NewScoreRepository(tx)
	analyticsRepo := sqlite.NewAnalyticsRepository(tx)

	for _, info := range appInfoSeeds {
		if err := appInfoRepo.Upsert(ctx, info.Key, info.Value); err != nil {
			return err
		}
	}

	for _, user := range userSeeds {
		inserted, err := userRepo.InsertIfAbsent(ctx, user)
		if err != nil {
			return err
		}
		if inserted {
			metrics.SeedRowsInserted.WithLabelValues(metrics.TableUsers).Inc()
		}
	}

	for _, game := range gameSeeds {
		inserted, err := gameRepo.InsertIfAbsent(ctx, game)
		if err != nil {
			return err
		}
		if inserted {
			metrics.SeedRowsInserted.WithLabelValues(metrics.TableGames).Inc()
		}
	}

	log := logger.FromContext(ctx)
	for _, seed := range scoreSeeds {
		gameID, userID, ok, err := s.resolveRefs(ctx, gameRepo, userRepo, seed.GameCode, seed.Username)
		if err != nil {
			return err
		}
		if !ok {
			// Soft precondition: a partial prior run may be missing a
			// parent row. Skip rather than fail.
			log.Debug("Skipping score seed, parent row missing",
				"game", seed.GameCode, "user", seed.Username)
			continue
		}

		inserted, err := scoreRepo.InsertIfAbsent(ctx, domain.GameScore{
			GameID: gameID,
			UserID: userID,
			Score:  seed.Score,
		})
		if err != nil {
			return err
		}
		if inserted {
			metrics.SeedRowsInserted.WithLabelValues(metrics.TableGameScores).Inc()
		}
	}

	for _, seed := range eventSeeds {
		event := domain.AnalyticsEvent{
			EventType:  seed.EventType,
			EventProps: ptr(seed.Props),
		}
		if userID, err := userRepo.GetIDByUsername(ctx, seed.Username); err == nil {
			event.UserID = &userID
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		if gameID, err := gameRepo.GetIDByCode(ctx, seed.GameCode); err == nil {
			event.GameID = &gameID
		} else if !errors.Is(err, domain.ErrGameNotFound) {
			return err
		}

		if err := analyticsRepo.Insert(ctx, event); err != nil {
			return err
		}
		metrics.SeedRowsInserted.WithLabelValues(metrics.TableAnalyticsEvents).Inc()
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

// resolveRefs looks up both parents of a score seed. ok is false when
// either natural key does not resolve.
func (s *Service) resolveRefs(ctx context.Context, games interface {
	GetIDByCode(ctx context.Context, code string) (int64, error)
}, users interface {
	GetIDByUsername(ctx context.Context, username string) (int64, error)
}, gameCode, username string) (gameID, userID int64, ok bool, err error) {
	gameID, err = games.GetIDByCode(ctx, gameCode)
	if errors.Is(err, domain.ErrGameNotFound) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}

	userID, err = users.GetIDByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}
	return gameID, userID, true, nil
}

func ptr(s string) *string { return &s }
