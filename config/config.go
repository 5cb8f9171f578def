package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	StoreMemory = "memory"
	StoreSQL    = "sql"
	StoreRedis  = "redis"

	DefaultAIModel   = "gemini-3-flash-preview"
	DefaultAITimeout = 60 * time.Second
)

// Config holds the application's configuration values.
type Config struct {
	AppName        string        `json:"appname"`
	AppEnv         string        `json:"appenv"`
	AppPort        uint16        `json:"appport"`
	GinMode        string        `json:"ginmode"`
	StoreDriver    string        `json:"storedriver"`
	DBDriver       string        `json:"dbdriver"`
	DBHost         string        `json:"dbhost"`
	DBPort         uint16        `json:"dbport"`
	DBName         string        `json:"dbname"`
	DBUSER         string        `json:"dbuser"`
	DBPass         string        `json:"dbpass"`
	SQLitePath     string        `json:"sqlitepath"`
	JWTSecret      string        `json:"-"`
	AIAPIKey       string        `json:"-"`
	AIModel        string        `json:"aimodel"`
	AITimeout      time.Duration `json:"aitimeout"`
	GeoIPPath      string        `json:"geoippath"`
	LoginRateLimit int           `json:"loginratelimit"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// A missing .env is fine, the process environment is used as-is.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Error loading .env file: %v", err)
		}
		config = readConfig()
	})
	return config
}

func readConfig() *Config {
	appPort, _ := strconv.ParseUint(getEnv("APPPORT", "8080"), 10, 16)
	dbPort, _ := strconv.ParseUint(getEnv("DBPORT", "3306"), 10, 16)
	rateLimit, _ := strconv.Atoi(getEnv("LOGIN_RATE_LIMIT", "0"))

	timeout := DefaultAITimeout
	if raw := os.Getenv("AI_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}

	return &Config{
		AppName:        getEnv("APPNAME", "Medi Help"),
		AppEnv:         os.Getenv("APPENV"),
		AppPort:        uint16(appPort),
		GinMode:        getEnv("GINMODE", "release"),
		StoreDriver:    getEnv("STORE_DRIVER", StoreSQL),
		DBDriver:       getEnv("DBDRIVER", "mysql"),
		DBHost:         os.Getenv("DBHOST"),
		DBPort:         uint16(dbPort),
		DBName:         os.Getenv("DBNAME"),
		DBUSER:         os.Getenv("DBUSER"),
		DBPass:         os.Getenv("DBPASS"),
		SQLitePath:     getEnv("SQLITE_PATH", "medihelp.db"),
		JWTSecret:      os.Getenv("JWTSECRET"),
		AIAPIKey:       apiKey,
		AIModel:        getEnv("AI_MODEL", DefaultAIModel),
		AITimeout:      timeout,
		GeoIPPath:      os.Getenv("GEOIP_DB_PATH"),
		LoginRateLimit: rateLimit,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// ErrMissingJWTSecret is returned by Validate when tokens would be signed with an empty key.
var ErrMissingJWTSecret = errors.New("JWTSECRET must be set")

// Validate checks the settings the server cannot safely run without.
// APPENV=test is exempt.
func (c *Config) Validate() error {
	if c.IsTest() {
		return nil
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// IsTest reports whether the service runs under APPENV=test.
func (c *Config) IsTest() bool {
	return c != nil && c.AppEnv == "test"
}

// ConnectDatabase opens the SQL database selected by DBDRIVER. Under
// APPENV=test it always returns a fresh in-memory SQLite database.
func ConnectDatabase() (*gorm.DB, error) {
	cfg := LoadConfig()

	var dialector gorm.Dialector
	switch {
	case cfg.IsTest():
		dsn := fmt.Sprintf("file:medihelp_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
		dialector = sqlite.Open(dsn)
	case cfg.DBDriver == "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4", cfg.DBUSER, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
