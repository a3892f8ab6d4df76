package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/events"
	"github.com/shopspring/decimal"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config настройки сервиса. Значения из окружения имеют приоритет над флагами, флаги задают значения по умолчанию.
// Ключи без флага берут значение по умолчанию из тега envDefault.
type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	Storage       string `env:"STORAGE"`
	JWTSecret     string `env:"JWT_SECRET"`
	RedisAddress  string `env:"REDIS_ADDRESS"`
	EventsDriver  string `env:"EVENTS_DRIVER"`

	KafkaBrokers  []string `env:"KAFKA_BROKERS"  envSeparator:","`
	KafkaTopic    string   `env:"KAFKA_TOPIC"    envDefault:"umbrella.events"`
	AMQPURL       string   `env:"AMQP_URL"`
	AMQPExchange  string   `env:"AMQP_EXCHANGE"  envDefault:"umbrella.events"`
	NotifyWorkers uint     `env:"NOTIFY_WORKERS" envDefault:"4"`

	MinStake              decimal.Decimal `env:"MIN_STAKE"               envDefault:"10"`
	WelcomeBalance        decimal.Decimal `env:"WELCOME_BALANCE"         envDefault:"5000"`
	ReferralBonusNew      decimal.Decimal `env:"REFERRAL_BONUS_NEW"      envDefault:"500"`
	ReferralBonusReferrer decimal.Decimal `env:"REFERRAL_BONUS_REFERRER" envDefault:"1000"`
	WagerRateLimit        int64           `env:"WAGER_RATE_LIMIT"        envDefault:"30"`
	ScheduleSpec          string          `env:"SCHEDULE_SPEC"           envDefault:"@every 1m"`
}

func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadConfig(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("umbrella", flag.ContinueOnError)
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.Storage, "s", StoragePostgres, "Storage: postgres or memory")
	fs.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")
	fs.StringVar(&flagConfig.RedisAddress, "r", "", "Redis address for wager rate limiting, empty disables the limiter")
	fs.StringVar(&flagConfig.EventsDriver, "e", string(events.DriverLog), "Events driver: log, kafka or amqp")

	return fs.Parse(args) //nolint:wrapcheck
}

// mergeConfig накладывает значения окружения на значения флагов. Ключи без флагов берутся из окружения.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.Storage = defaultIfBlank(envConfig.Storage, flagsConfig.Storage)
	conf.JWTSecret = defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret)
	conf.RedisAddress = defaultIfBlank(envConfig.RedisAddress, flagsConfig.RedisAddress)
	conf.EventsDriver = defaultIfBlank(envConfig.EventsDriver, flagsConfig.EventsDriver)
	return &conf
}

func (c *Config) validate() error {
	switch c.Storage {
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			return errors.New("database DSN is not set")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage `%s`", c.Storage)
	}

	if c.JWTSecret == "" {
		return errors.New("jwt secret is not set")
	}

	switch driver := events.Driver(c.EventsDriver); {
	case !driver.IsValid():
		return fmt.Errorf("unknown events driver `%s`", c.EventsDriver)
	case driver == events.DriverKafka && len(c.KafkaBrokers) == 0:
		return errors.New("kafka brokers are not set")
	case driver == events.DriverAMQP && c.AMQPURL == "":
		return errors.New("amqp url is not set")
	}

	for name, amount := range map[string]decimal.Decimal{
		"min stake":               c.MinStake,
		"welcome balance":         c.WelcomeBalance,
		"referral bonus new":      c.ReferralBonusNew,
		"referral bonus referrer": c.ReferralBonusReferrer,
	} {
		if !domain.IsMoney(amount) {
			return fmt.Errorf("%s %s has more than %d decimal places", name, amount, domain.MoneyPlaces)
		}
	}
	if !c.MinStake.IsPositive() {
		return errors.New("min stake must be positive")
	}
	if c.WelcomeBalance.IsNegative() || c.ReferralBonusNew.IsNegative() || c.ReferralBonusReferrer.IsNegative() {
		return errors.New("welcome balance and referral bonuses must not be negative")
	}
	if c.WagerRateLimit <= 0 {
		return errors.New("wager rate limit must be positive")
	}
	return nil
}

// EventsConfig настройки публикации событий.
func (c *Config) EventsConfig() events.Config {
	return events.Config{
		Driver:       events.Driver(c.EventsDriver),
		KafkaBrokers: c.KafkaBrokers,
		KafkaTopic:   c.KafkaTopic,
		AMQPURL:      c.AMQPURL,
		AMQPExchange: c.AMQPExchange,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
