package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"
)

const (
	DefaultPort                 = "8080"
	DefaultStoreDriver          = StoreDriverPostgres
	DefaultMongoDatabase        = "authDB"
	DefaultJWTIssuer            = "auth-gate"
	DefaultAccessTokenExpiryMin = 60
	DefaultBcryptCost           = 10
	DefaultLogLevel             = "info"
	DefaultShutdownTimeoutSec   = 10
)

type Config struct {
	Env                string
	Port               string
	StoreDriver        string
	DBURL              string
	MongoURL           string
	MongoDatabase      string
	JWTSecret          string
	JWTIssuer          string
	AccessExpiryMin    int
	BcryptCost         int
	LogLevel           string
	ShutdownTimeoutSec int
}

func (c *Config) AccessTokenExpiry() time.Duration {
	return time.Duration(c.AccessExpiryMin) * time.Minute
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

// Load reads config/.env.dev or config/.env.prod (chosen by ENV) when present.
// Environment variables always take precedence over file values.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	env := getEnv(v, "ENV", EnvDevelopment)
	readEnvFile(v, env)

	cfg := &Config{
		Env:                env,
		Port:               getEnv(v, "PORT", DefaultPort),
		StoreDriver:        strings.ToLower(getEnv(v, "STORE_DRIVER", DefaultStoreDriver)),
		MongoDatabase:      getEnv(v, "MONGO_DATABASE", DefaultMongoDatabase),
		JWTSecret:          mustGetEnv(v, "JWT_SECRET"),
		JWTIssuer:          getEnv(v, "JWT_ISSUER", DefaultJWTIssuer),
		AccessExpiryMin:    getEnvAsInt(v, "ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		BcryptCost:         getEnvAsInt(v, "BCRYPT_COST", DefaultBcryptCost),
		LogLevel:           getEnv(v, "LOG_LEVEL", DefaultLogLevel),
		ShutdownTimeoutSec: getEnvAsInt(v, "SHUTDOWN_TIMEOUT", DefaultShutdownTimeoutSec),
	}

	if cfg.AccessExpiryMin <= 0 {
		log.Printf("ACCESS_TOKEN_EXPIRY must be positive, using default %d", DefaultAccessTokenExpiryMin)
		cfg.AccessExpiryMin = DefaultAccessTokenExpiryMin
	}
	if cfg.ShutdownTimeoutSec <= 0 {
		cfg.ShutdownTimeoutSec = DefaultShutdownTimeoutSec
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		cfg.DBURL = mustGetEnv(v, "DB_URL")
	case StoreDriverMongo:
		cfg.MongoURL = mustGetEnv(v, "MONGO_URL")
	case StoreDriverMemory:
	default:
		log.Fatalf("Unsupported STORE_DRIVER: %s", cfg.StoreDriver)
	}

	return cfg
}

func envFile(env string) string {
	if env == EnvProduction {
		return filepath.Join("config", ".env.prod")
	}
	return filepath.Join("config", ".env.dev")
}

func readEnvFile(v *viper.Viper, env string) {
	path := envFile(env)
	if _, err := os.Stat(path); err != nil {
		return
	}

	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("Could not read %s: %v", path, err)
	}
}

func getEnv(v *viper.Viper, key string, defaultVal string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(v *viper.Viper, key string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(v *viper.Viper, key string, defaultVal int) int {
	valStr := v.GetString(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
