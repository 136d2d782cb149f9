package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported DB_DRIVER values.
const (
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
	DriverSQLServer = "sqlserver"
)

type Config struct {
	Port           string
	LogLevel       string
	DBDriver       string
	DatabaseURL    string
	DBMaxConns     int
	MigrateOnStart bool

	RulesPath     string
	Renderer      string
	FontPath      string
	CloudWidth    int
	CloudHeight   int
	CloudMaxWords int

	RedisURL        string
	CacheTTLSeconds int

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
}

// Load reads environment variables, optionally from a .env file if present.
// db_info.env (DB_HOST, DB_USER, DB_PASS, DB_NAME) is honoured too.
func Load() Config {
	// Try to load .env files if they exist; ignore error if not found
	_ = godotenv.Load()
	_ = godotenv.Load("db_info.env")

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DBDriver:       driver,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBMaxConns:     getEnvInt("DB_MAX_CONNS", 10),
		MigrateOnStart: getEnvBool("MIGRATE_ON_START", true),

		RulesPath:     os.Getenv("RULES_PATH"),
		Renderer:      getEnv("RENDERER", "cloud"),
		FontPath:      os.Getenv("FONT_PATH"),
		CloudWidth:    getEnvInt("CLOUD_WIDTH", 800),
		CloudHeight:   getEnvInt("CLOUD_HEIGHT", 600),
		CloudMaxWords: getEnvInt("CLOUD_MAX_WORDS", 100),

		RedisURL:        os.Getenv("REDIS_URL"),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 600),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTIssuer:     getEnv("JWT_ISSUER", "jobstats"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = BuildDSN(driver, DBParams{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
			Name:     os.Getenv("DB_NAME"),
		})
	}
	return cfg
}

// DBParams are the discrete connection settings used when DATABASE_URL is absent.
type DBParams struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// BuildDSN composes a driver-specific DSN. Returns "" when there is not
// enough information to connect.
func BuildDSN(driver string, p DBParams) string {
	switch driver {
	case DriverSQLite:
		// for sqlite DB_NAME is the database file
		return p.Name
	case DriverSQLServer:
		if p.Host == "" {
			return ""
		}
		u := url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(p.User, p.Password),
			Host:     hostPort(p.Host, p.Port, "1433"),
			RawQuery: url.Values{"database": {p.Name}}.Encode(),
		}
		return u.String()
	default:
		if p.Host == "" {
			return ""
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(p.User, p.Password),
			Host:     hostPort(p.Host, p.Port, "5432"),
			Path:     "/" + p.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	}
}

func hostPort(host, port, def string) string {
	if port == "" {
		port = def
	}
	return fmt.Sprintf("%s:%s", host, port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
