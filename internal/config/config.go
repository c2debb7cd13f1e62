package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Trivia   TriviaConfig   `mapstructure:"trivia"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port            string `mapstructure:"port" validate:"required"`
	Mode            string `mapstructure:"mode" validate:"oneof=debug release test"` // Режим gin
	ReadTimeout     int    `mapstructure:"read_timeout" validate:"min=0"`             // секунды
	WriteTimeout    int    `mapstructure:"write_timeout" validate:"min=0"`            // секунды
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"min=1"`         // секунды
}

// DatabaseConfig содержит настройки подключения к хранилищу.
// Driver "postgres" для боевого окружения, "sqlite" для локального запуска без сервера БД.
type DatabaseConfig struct {
	Driver         string `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	Host           string `mapstructure:"host" validate:"required_if=Driver postgres"`
	Port           string `mapstructure:"port" validate:"required_if=Driver postgres"`
	User           string `mapstructure:"user" validate:"required_if=Driver postgres"`
	Password       string `mapstructure:"password"`
	DBName         string `mapstructure:"dbname" validate:"required_if=Driver postgres"`
	SSLMode        string `mapstructure:"sslmode"`
	SQLitePath     string `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
	LogLevel       string `mapstructure:"log_level" validate:"oneof=silent error warn info"` // Уровень логгера GORM
	MigrationsPath string `mapstructure:"migrations_path"`
	MaxOpenConns   int    `mapstructure:"max_open_conns" validate:"min=1"`
	MaxIdleConns   int    `mapstructure:"max_idle_conns" validate:"min=0"`
}

// LogConfig содержит настройки zerolog
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Pretty bool   `mapstructure:"pretty"` // Человекочитаемый вывод вместо JSON
}

// CORSConfig содержит список разрешённых источников
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"min=1"`
}

// TriviaConfig содержит настройки выдачи вопросов
type TriviaConfig struct {
	QuestionsPerPage int `mapstructure:"questions_per_page" validate:"min=1"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// PostgresURL формирует URL подключения для golang-migrate.
// Логин и пароль экранируются.
func (d *DatabaseConfig) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// setDefaults задаёт значения, при которых сервис поднимается локально без конфига
func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.port", "5000")
	vip.SetDefault("server.mode", "debug")
	vip.SetDefault("server.read_timeout", 15)
	vip.SetDefault("server.write_timeout", 15)
	vip.SetDefault("server.shutdown_timeout", 10)

	vip.SetDefault("database.driver", "postgres")
	vip.SetDefault("database.host", "localhost")
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.user", "postgres")
	vip.SetDefault("database.dbname", "trivia")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.sqlite_path", "trivia.db")
	vip.SetDefault("database.log_level", "warn")
	vip.SetDefault("database.migrations_path", "migrations")
	vip.SetDefault("database.max_open_conns", 25)
	vip.SetDefault("database.max_idle_conns", 10)

	vip.SetDefault("log.level", "info")
	vip.SetDefault("log.pretty", false)

	vip.SetDefault("cors.allow_origins", []string{"*"})

	vip.SetDefault("trivia.questions_per_page", 10)
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	// .env необязателен: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to read .env file")
	}

	vip := viper.New() // Новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Значения по умолчанию
	setDefaults(vip)

	// 2. Привязываем переменные окружения ЯВНО
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.mode", "GIN_MODE")
	vip.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	vip.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")
	vip.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")

	vip.BindEnv("database.driver", "DATABASE_DRIVER")
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.sqlite_path", "DATABASE_SQLITE_PATH")
	vip.BindEnv("database.log_level", "DATABASE_LOG_LEVEL")
	vip.BindEnv("database.migrations_path", "DATABASE_MIGRATIONS_PATH")

	vip.BindEnv("log.level", "LOG_LEVEL")
	vip.BindEnv("log.pretty", "LOG_PRETTY")

	vip.BindEnv("cors.allow_origins", "CORS_ALLOW_ORIGINS") // Через запятую

	vip.BindEnv("trivia.questions_per_page", "TRIVIA_QUESTIONS_PER_PAGE")

	// 3. Файл конфигурации (не страшно, если его нет, т.к. есть BindEnv и умолчания)
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
				log.Info().Str("path", configPath).Msg("config file not found, using environment and defaults")
			} else {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	// 4. Анмаршалим конфигурацию (Viper объединит значения из файла и привязанных env vars)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Проверка обязательных параметров
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Server.Mode == "release" && cfg.Database.Driver == "postgres" && cfg.Database.Password == "" {
		return nil, fmt.Errorf("database password is required in release mode (check DATABASE_PASSWORD env var)")
	}

	if cfg.Server.Mode != "release" {
		log.Debug().
			Str("server_port", cfg.Server.Port).
			Str("db_driver", cfg.Database.Driver).
			Str("db_host", cfg.Database.Host).
			Str("db_name", cfg.Database.DBName).
			Bool("db_password_set", cfg.Database.Password != "").
			Int("questions_per_page", cfg.Trivia.QuestionsPerPage).
			Msg("configuration loaded")
	}

	return &cfg, nil
}
