package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/trivia-questions/internal/config"
	"github.com/yourusername/trivia-questions/internal/pkg/logger"
	"github.com/yourusername/trivia-questions/pkg/database"
)

const usage = `usage: migrate [-config path] <command>

commands:
  up         apply all pending migrations
  down       roll back the last migration
  version    print the current version
  force N    set version N and clear the dirty flag`

// migrator подмножество *migrate.Migrate, используемое командами
type migrator interface {
	Up() error
	Steps(n int) error
	Version() (uint, bool, error)
	Force(version int) error
}

func main() {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	configPath := fs.String("config", envOr("CONFIG_PATH", "config/config.yaml"), "path to config file")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Logger = logger.New(cfg.Log)

	if cfg.Database.Driver != "postgres" {
		log.Fatal().Str("driver", cfg.Database.Driver).Msg("Migrations are only used with the postgres driver")
	}

	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, cfg.Database.PostgresURL())
	if err != nil {
		log.Fatal().Err(err).Str("sqlstate", database.SQLState(err)).Msg("Failed to create migrate instance")
	}

	err = run(fs.Args(), m, os.Stdout)
	closeMigrator(m)
	if err != nil {
		log.Fatal().Err(err).Str("sqlstate", database.SQLState(err)).Msg("Migration command failed")
	}
}

// closeMigrator закрывает источник и подключение к базе
func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Warn().Err(srcErr).Msg("Failed to close migration source")
	}
	if dbErr != nil {
		log.Warn().Err(dbErr).Msg("Failed to close migration database")
	}
}

// run выполняет команду args над m и печатает результат в out
func run(args []string, m migrator, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up: %w", err)
		}
	case "down":
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down: %w", err)
		}
	case "version":
	case "force":
		if len(args) != 2 {
			return errors.New("force requires a version number")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force: %w", err)
		}
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		fmt.Fprintln(out, "version: none")
	case err != nil:
		return fmt.Errorf("version: %w", err)
	default:
		fmt.Fprintf(out, "version: %d dirty: %t\n", version, dirty)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
