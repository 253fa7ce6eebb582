package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

type Config struct {
	Server   Server
	Store    Store
	Database Database
	Mongo    Mongo
	JWT      JWT
	RabbitMQ RabbitMQ
	CORS     CORS
	Log      Log
}

type Server struct {
	Port    string
	GinMode string
}

type Store struct {
	Driver string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN is the postgres connection string for gorm.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

type Mongo struct {
	URI      string
	Database string
}

type JWT struct {
	UserSecret  string
	AdminSecret string
}

type RabbitMQ struct {
	URI      string
	Exchange string
}

// Enabled reports whether events go to a broker instead of the log.
func (r RabbitMQ) Enabled() bool {
	return r.URI != "" && r.Exchange != ""
}

type CORS struct {
	AllowOrigins []string
}

type Log struct {
	Level  string
	Format string
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("STORE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "coursehive")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Store.Driver = strings.ToLower(viper.GetString("STORE_DRIVER"))

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Mongo.URI = viper.GetString("MONGO_URI")
	config.Mongo.Database = viper.GetString("MONGO_DATABASE")

	config.JWT.UserSecret = viper.GetString("JWT_USER_SECRET")
	config.JWT.AdminSecret = viper.GetString("JWT_ADMIN_SECRET")

	config.RabbitMQ.URI = viper.GetString("RABBITMQ_URI")
	config.RabbitMQ.Exchange = viper.GetString("RABBITMQ_EXCHANGE")

	config.CORS.AllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Format = viper.GetString("LOG_FORMAT")

	if err := config.validate(); err != nil {
		return nil, err
	}

	// Secrets and credentials stay out of the log.
	log.Info().
		Str("port", config.Server.Port).
		Str("store", config.Store.Driver).
		Bool("events", config.RabbitMQ.Enabled()).
		Strs("corsOrigins", config.CORS.AllowOrigins).
		Msg("Config loaded")
	return &config, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverPostgres, DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.JWT.UserSecret == "" || c.JWT.AdminSecret == "" {
		return fmt.Errorf("JWT_USER_SECRET and JWT_ADMIN_SECRET must be set")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
