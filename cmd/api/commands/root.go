package commands

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mem "petclinic/internal/adapters/storage/memory"
	pg "petclinic/internal/adapters/storage/postgres"
	"petclinic/internal/adapters/storage/sqlite"
	"petclinic/internal/domain/clinic"
	"petclinic/internal/platform/config"
	"petclinic/internal/platform/logger"
)

var (
	cfg config.Config
	log logger.Logger

	storageFlag    string
	dsnFlag        string
	sqlitePathFlag string
	logLevelFlag   string
	logFormatFlag  string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "petclinic",
		Short:        "Pet clinic API (owners, mascotas, visitas, veterinarios)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.FromEnv()
			if err != nil {
				return err
			}
			cfg = loaded

			// Los flags pisan el entorno
			if cmd.Flags().Changed("dsn") {
				cfg.DBDSN = dsnFlag
				cfg.Storage = config.StoragePostgres
			}
			if cmd.Flags().Changed("storage") {
				cfg.Storage = config.Storage(strings.ToLower(storageFlag))
			}
			if cmd.Flags().Changed("sqlite-path") {
				cfg.SQLitePath = sqlitePathFlag
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevelFlag
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormatFlag
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log = logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.LogLevel),
				Format: logger.ParseFormat(cfg.LogFormat),
				App:    cfg.AppName,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&storageFlag, "storage", "", "storage backend: memory|postgres|sqlite (env STORAGE)")
	root.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "postgres DSN (env DB_DSN)")
	root.PersistentFlags().StringVar(&sqlitePathFlag, "sqlite-path", "", "sqlite file (env SQLITE_PATH)")
	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "debug|info|warn|error (env LOG_LEVEL)")
	root.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "text|json (env LOG_FORMAT)")

	root.AddCommand(serveCmd(), seedCmd())
	return root.Execute()
}

// openService arma el Service sobre el storage configurado. close libera la DB (no-op en memoria).
func openService(ctx context.Context) (svc *clinic.Service, closeFn func() error, err error) {
	var (
		db    *sql.DB
		repos clinic.Repositories
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		db, err = pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		repos = pg.NewRepositories(db)
	case config.StorageSQLite:
		db, err = sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		repos = sqlite.NewRepositories(db)
	default:
		repos = mem.NewRepositories()
	}

	closeFn = func() error { return nil }
	if db != nil {
		closeFn = db.Close
	}

	log.Info("storage ready", logger.Fields{"storage": string(cfg.Storage)})
	return clinic.NewService(repos), closeFn, nil
}
