package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv   string
	AppPort  string
	LogLevel string

	// DatabaseURL wins over the MySQL settings when set (Postgres URL).
	DatabaseURL string
	DBDriver    string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	SQLitePath string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	DriveEnabled  bool
	DriveFolderID string
	DriveKeyFile  string
	MediaRoot     string
	MaxUploadMB   int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// LoadDotEnv reads .env files into the process environment. Missing files are
// ignored; variables already set are never overwritten.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

func Load() *Config {
	c := &Config{
		AppEnv:   getenv("APP_ENV", "development"),
		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBDriver:    strings.ToLower(os.Getenv("DB_DRIVER")),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "bursary"),
		MySQLUser: getenv("MYSQL_USER", "bursary"),
		MySQLPass: getenv("MYSQL_PASS", "bursary"),

		SQLitePath: getenv("SQLITE_PATH", "bursary.db"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:      getint("REDIS_DB", 0),
		IdempTTLSecs: getint("IDEMPOTENCY_TTL_SECONDS", 300),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTIssuer: getenv("JWT_ISSUER", "bursary-portal"),
		TokenTTL:  time.Duration(getint("TOKEN_TTL_MINUTES", 60)) * time.Minute,

		DriveFolderID: os.Getenv("GOOGLE_DRIVE_FOLDER_ID"),
		DriveKeyFile:  os.Getenv("GOOGLE_DRIVE_CREDENTIALS_FILE"),
		MediaRoot:     getenv("MEDIA_ROOT", "media"),
		MaxUploadMB:   getint("MAX_UPLOAD_MB", 10),
	}
	c.DriveEnabled, _ = strconv.ParseBool(getenv("USE_GOOGLE_DRIVE", "false"))
	if c.DBDriver == "" {
		switch {
		case c.DatabaseURL != "":
			c.DBDriver = DriverPostgres
		case os.Getenv("MYSQL_HOST") != "":
			c.DBDriver = DriverMySQL
		default:
			c.DBDriver = DriverSQLite
		}
	}
	return c
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("missing DATABASE_URL for postgres")
		}
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL_MINUTES must be positive")
	}
	if c.DriveEnabled && (c.DriveFolderID == "" || c.DriveKeyFile == "") {
		return errors.New("USE_GOOGLE_DRIVE requires GOOGLE_DRIVE_FOLDER_ID and GOOGLE_DRIVE_CREDENTIALS_FILE")
	}
	if c.MaxUploadMB <= 0 {
		return errors.New("MAX_UPLOAD_MB must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
