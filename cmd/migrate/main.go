package main

import (
	"database/sql"
	"flag"

	_ "github.com/lib/pq"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/config"
	"github.com/limbo/accountability/pkg/logger"
	"github.com/pressly/goose"
	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with goose migrations")
	down := flag.Bool("down", false, "roll back the latest migration")
	flag.Parse()

	cfg := config.New()
	log := logger.New(logger.Options{Level: cfg.GetString("LOG_LEVEL")})
	defer func() { _ = log.Sync() }()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	db, err := sql.Open("postgres", dbCfg.ConnString()+"?sslmode="+cfg.GetStringOr("POSTGRES_SSLMODE", "disable"))
	if err != nil {
		log.Fatal("opening db error", zap.Error(err))
	}
	defer db.Close()

	if err = goose.SetDialect("postgres"); err != nil {
		log.Fatal("setting goose dialect error", zap.Error(err))
	}
	if *down {
		err = goose.Down(db, *dir)
	} else {
		err = goose.Up(db, *dir)
	}
	if err != nil {
		log.Fatal("migration error", zap.Error(err), zap.String("dir", *dir))
	}
	version, err := goose.GetDBVersion(db)
	if err != nil {
		log.Fatal("getting db version error", zap.Error(err))
	}
	log.Info("migrations applied", zap.Int64("version", version))
}
