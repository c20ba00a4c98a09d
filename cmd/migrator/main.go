// migrator aplica las migraciones SQL de migrations/ sobre PostgreSQL.
//
// Uso: go run ./cmd/migrator [--migrations-path migrations] [--database-url postgres://...] [--down] [--steps N]
// Sin --database-url usa DATABASE_URL / DB_* (pkg/config).
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"

	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

const (
	migrationsPathFlag = "migrations-path"
	databaseURLFlag    = "database-url"
)

// migrationLogger adapta logger.Logger a migrate.Logger.
type migrationLogger struct {
	log     *logger.Logger
	verbose bool
}

func (ml *migrationLogger) Printf(format string, v ...any) {
	ml.log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (ml *migrationLogger) Verbose() bool {
	return ml.verbose
}

func main() {
	migrationsPath := pflag.StringP(migrationsPathFlag, "m", "migrations", "directorio con los archivos *.up.sql / *.down.sql")
	databaseURL := pflag.StringP(databaseURLFlag, "d", "", "connection string de PostgreSQL (por defecto DATABASE_URL o DB_*)")
	down := pflag.Bool("down", false, "revertir migraciones en vez de aplicarlas")
	steps := pflag.IntP("steps", "n", 0, "número de migraciones a aplicar/revertir (0 = todas)")
	verbose := pflag.BoolP("verbose", "v", false, "log detallado de golang-migrate")
	pflag.Parse()

	log := logger.New(logger.Config{Env: "development", Level: "info"}).Named("migrator")

	dsn := *databaseURL
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("cargar configuración")
		}
		dsn = cfg.DB.ConnectionString()
	}
	if *migrationsPath == "" {
		log.Error().Msgf("--%s: requerido", migrationsPathFlag)
		os.Exit(2)
	}

	m, err := migrate.New("file://"+*migrationsPath, pgx5URL(dsn))
	if err != nil {
		log.Error().Err(err).Msg("inicializar migraciones")
		os.Exit(2)
	}
	defer m.Close()
	m.Log = &migrationLogger{log: log, verbose: *verbose}

	if err := run(m, *down, *steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no hay migraciones pendientes")
			return
		}
		log.Error().Err(err).Msg("aplicar migraciones")
		os.Exit(2)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Warn().Err(err).Msg("leer versión")
		return
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migraciones aplicadas")
}

func run(m *migrate.Migrate, down bool, steps int) error {
	switch {
	case steps > 0 && down:
		return m.Steps(-steps)
	case steps > 0:
		return m.Steps(steps)
	case down:
		return m.Down()
	default:
		return m.Up()
	}
}

// pgx5URL convierte postgres:// o postgresql:// al esquema registrado por el driver pgx/v5.
func pgx5URL(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
