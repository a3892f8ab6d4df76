package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	conf, err := loadConfig([]string{"-s", StorageMemory, "-j", "secret"})
	s.Require().NoError(err)

	s.Equal("localhost:8080", conf.RunAddress)
	s.Equal(StorageMemory, conf.Storage)
	s.Equal("log", conf.EventsDriver)
	s.True(conf.MinStake.Equal(decimal.NewFromInt(10)))
	s.True(conf.WelcomeBalance.Equal(decimal.NewFromInt(5000)))
	s.True(conf.ReferralBonusNew.Equal(decimal.NewFromInt(500)))
	s.True(conf.ReferralBonusReferrer.Equal(decimal.NewFromInt(1000)))
	s.Equal(int64(30), conf.WagerRateLimit)
	s.Equal("@every 1m", conf.ScheduleSpec)
}

func (s *ConfigTestSuite) TestEnvOverridesFlags() {
	s.T().Setenv("RUN_ADDRESS", "0.0.0.0:9000")
	s.T().Setenv("DATABASE_URI", "postgres://env")
	s.T().Setenv("JWT_SECRET", "env-secret")
	s.T().Setenv("MIN_STAKE", "2.50")
	s.T().Setenv("EVENTS_DRIVER", "kafka")
	s.T().Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	conf, err := loadConfig([]string{"-a", "localhost:1", "-d", "postgres://flag", "-j", "flag-secret"})
	s.Require().NoError(err)

	s.Equal("0.0.0.0:9000", conf.RunAddress)
	s.Equal("postgres://env", conf.DatabaseDSN)
	s.Equal("env-secret", conf.JWTSecret)
	s.True(conf.MinStake.Equal(decimal.RequireFromString("2.5")))
	s.Equal([]string{"k1:9092", "k2:9092"}, conf.EventsConfig().KafkaBrokers)
}

func (s *ConfigTestSuite) TestValidation() {
	cases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "postgres without dsn", args: []string{"-j", "secret"}},
		{name: "unknown storage", args: []string{"-s", "sqlite", "-j", "secret"}},
		{name: "no jwt secret", args: []string{"-s", StorageMemory}},
		{name: "unknown events driver", args: []string{"-s", StorageMemory, "-j", "secret", "-e", "nats"}},
		{name: "kafka without brokers", args: []string{"-s", StorageMemory, "-j", "secret", "-e", "kafka"}},
		{name: "amqp without url", args: []string{"-s", StorageMemory, "-j", "secret", "-e", "amqp"}},
		{
			name: "zero min stake",
			env:  map[string]string{"MIN_STAKE": "0"},
			args: []string{"-s", StorageMemory, "-j", "secret"},
		},
		{
			name: "referral bonus finer than cents",
			env:  map[string]string{"REFERRAL_BONUS_NEW": "500.005"},
			args: []string{"-s", StorageMemory, "-j", "secret"},
		},
		{name: "unknown flag", args: []string{"-x"}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			for k, v := range tc.env {
				s.T().Setenv(k, v)
			}
			_, err := loadConfig(tc.args)
			s.Require().Error(err)
		})
	}
}

func (s *ConfigTestSuite) TestLoadSettleConfig() {
	s.T().Setenv("DATABASE_URI", "postgres://env")

	conf, err := LoadSettleConfig([]string{"-match", "7", "-outcome", "cancelled", "-d", "postgres://flag"})
	s.Require().NoError(err)
	s.Equal("postgres://env", conf.DatabaseDSN)
	s.Equal(int64(7), conf.MatchID)
	s.Equal("cancelled", conf.Outcome)
	s.Equal("internal/db/migrations", conf.MigrationsDir)

	_, err = LoadSettleConfig([]string{"-match", "7", "-outcome", "draw"})
	s.Require().Error(err)

	_, err = LoadSettleConfig([]string{"-outcome", "home"})
	s.Require().Error(err)
}
