package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Data    DataConfig
	Logger  LoggerConfig
	UI      UIConfig
	Catalog CatalogConfig
}

type DataConfig struct {
	Dir              string
	ProductsFile     string
	ProductCounter   string
	TicketCounter    string
	TransactionsFile string
	AgentsFile       string
	SettingsFile     string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	File              string
	DisableCaller     bool
	DisableStacktrace bool
}

type UIConfig struct {
	PollIntervalMs int
	CartCapacity   int
	QueryWidth     int
}

type CatalogConfig struct {
	AllowNegativeStock bool
}

func LoadEnv() *Config {
	dataDir := getEnv("POS_DATA_DIR", ".")
	return &Config{
		Data: DataConfig{
			Dir:              dataDir,
			ProductsFile:     filepath.Join(dataDir, getEnv("POS_PRODUCTS_FILE", "products.dat")),
			ProductCounter:   filepath.Join(dataDir, getEnv("POS_LAST_ID_FILE", "last_id.txt")),
			TicketCounter:    filepath.Join(dataDir, getEnv("POS_LAST_TICKET_ID_FILE", "last_ticket_id.txt")),
			TransactionsFile: filepath.Join(dataDir, getEnv("POS_TRANSACTIONS_FILE", "transactions.csv")),
			AgentsFile:       filepath.Join(dataDir, getEnv("POS_AGENTS_FILE", "agents.csv")),
			SettingsFile:     filepath.Join(dataDir, getEnv("POS_SETTINGS_FILE", "config.ini")),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			File:              getEnv("POS_LOG_FILE", "pos.log"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		UI: UIConfig{
			PollIntervalMs: getEnvInt("POS_POLL_INTERVAL_MS", 100),
			CartCapacity:   getEnvInt("POS_CART_CAPACITY", 50),
			QueryWidth:     getEnvInt("POS_QUERY_WIDTH", 13),
		},
		Catalog: CatalogConfig{
			AllowNegativeStock: getEnvBool("POS_ALLOW_NEGATIVE_STOCK", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
