// Comando migrate aplica ou desfaz as migrações do PostgreSQL.
//
//	migrate up | down | version
package main

import (
	"fmt"
	"os"

	"github.com/araujocontabil/reforma-tributaria-api/internal/infrastructure/postgres"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/config"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "carregar configuração:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	if !cfg.DB.Enabled() {
		log.Fatal().Msg("defina DATABASE_URL ou DB_HOST")
	}
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: migrate up|down|version")
		os.Exit(2)
	}

	dsn := cfg.DB.ConnectionString()
	switch os.Args[1] {
	case "up":
		if err := postgres.Migrate(dsn); err != nil {
			log.Fatal().Err(err).Msg("migrate up")
		}
		log.Info().Msg("migrações aplicadas")
	case "down":
		if err := postgres.MigrateDown(dsn); err != nil {
			log.Fatal().Err(err).Msg("migrate down")
		}
		log.Info().Msg("última migração desfeita")
	case "version":
		v, dirty, err := postgres.MigrationVersion(dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("migrate version")
		}
		fmt.Printf("versão %d (suja: %t)\n", v, dirty)
	default:
		fmt.Fprintf(os.Stderr, "comando desconhecido %q; uso: migrate up|down|version\n", os.Args[1])
		os.Exit(2)
	}
}
