package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	RedisAddr     string
	RedisPort     string
	RedisPassword string
	JWTSecret     string

	// Transport credentials. BotServiceToken authenticates the chat
	// transport against the user-facing API; ChannelUsername and
	// BotUsername are rendered into verification and referral-link texts.
	BotServiceToken string
	ChannelUsername string
	BotUsername     string

	// Optional AMQP broker for domain events. Empty means events are only
	// written to the log.
	AMQPURL       string
	EventExchange string

	// Pricing overrides; zero values keep the built-in tables.
	WithdrawalFee       float64
	MinWithdrawalAmount float64
	VIPCosts            map[int]float64
	CommissionRates     []float64

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func (c *Config) RedisFullAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisAddr, c.RedisPort)
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		RedisAddr:     os.Getenv("REDIS_HOST"),
		RedisPort:     os.Getenv("REDIS_PORT"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),

		BotServiceToken: os.Getenv("BOT_SERVICE_TOKEN"),
		ChannelUsername: os.Getenv("CHANNEL_USERNAME"),
		BotUsername:     os.Getenv("BOT_USERNAME"),

		AMQPURL:       os.Getenv("AMQP_URL"),
		EventExchange: getEnv("EVENT_EXCHANGE", "referralvip.events"),

		WithdrawalFee:       getEnvAsFloat("WITHDRAWAL_FEE", 0),
		MinWithdrawalAmount: getEnvAsFloat("MIN_WITHDRAWAL_AMOUNT", 0),
		VIPCosts:            parseCostTable(os.Getenv("VIP_COSTS")),
		CommissionRates:     parseRateTable(os.Getenv("COMMISSION_RATES")),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/app.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

// parseCostTable parses "1:2000,2:4000" style level:cost pairs. Malformed
// pairs are skipped.
func parseCostTable(raw string) map[int]float64 {
	if raw == "" {
		return nil
	}
	costs := make(map[int]float64)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			continue
		}
		level, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		cost, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}
		costs[level] = cost
	}
	return costs
}

// parseRateTable parses a comma-separated list of per-level rates. Anything
// malformed discards the whole table rather than applying half of it.
func parseRateTable(raw string) []float64 {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	rates := make([]float64, 0, len(parts))
	for _, part := range parts {
		rate, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil
		}
		rates = append(rates, rate)
	}
	return rates
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
