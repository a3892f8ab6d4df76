package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/fsdevblog/umbrella-ledger/internal/domain"
)

// SettleConfig настройки утилиты ручного расчета матча.
type SettleConfig struct {
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	MatchID int64
	Outcome string
}

func LoadSettleConfig(args []string) (*SettleConfig, error) {
	var flagsConfig, envConfig SettleConfig

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	fs := flag.NewFlagSet("settle", flag.ContinueOnError)
	fs.StringVar(&flagsConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagsConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.Int64Var(&flagsConfig.MatchID, "match", 0, "Match ID")
	fs.StringVar(&flagsConfig.Outcome, "outcome", "", "Match result: home, away or cancelled")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %s", err.Error())
	}

	conf := flagsConfig
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)

	switch {
	case conf.DatabaseDSN == "":
		return nil, errors.New("database DSN is not set")
	case conf.MatchID <= 0:
		return nil, errors.New("match id must be positive")
	case !domain.Outcome(conf.Outcome).IsResult():
		return nil, fmt.Errorf("outcome `%s`: %w", conf.Outcome, domain.ErrInvalidOutcome)
	}
	return &conf, nil
}
