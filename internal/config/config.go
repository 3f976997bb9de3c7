package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// StoreBackend selects the persistence layer: sqlite (default),
	// postgres, or redis.
	StoreBackend string
	StorePath    string
	DatabaseURL  string
	RedisAddr    string

	// KafkaAddress enables the domain-event producer when set.
	KafkaAddress string

	SessionSecret []byte

	// HashPasswords off reverts to the original plaintext storage, only
	// useful against stores written by the legacy client.
	HashPasswords bool
	// NormalizeEmails switches account lookup to case-insensitive email
	// matching.
	NormalizeEmails bool

	ServerPort string
	LogLevel   string
}

func must(v string, name string) string {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
	return v
}

func boolEnv(name string, def bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("env %s: not a bool: %q", name, v)
	}
	return b
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		StoreBackend:    os.Getenv("STORE_BACKEND"),
		StorePath:       os.Getenv("STORE_PATH"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaAddress:    os.Getenv("KAFKA_ADDRESS"),
		SessionSecret:   []byte(must(os.Getenv("SESSION_SECRET"), "SESSION_SECRET")),
		HashPasswords:   boolEnv("HASH_PASSWORDS", true),
		NormalizeEmails: boolEnv("NORMALIZE_EMAILS", false),
		ServerPort:      os.Getenv("SERVER_PORT"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}

	if cfg.StoreBackend == "" {
		cfg.StoreBackend = "sqlite"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	return cfg
}
