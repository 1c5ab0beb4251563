// Package config reads the configuration of the backend from the
// environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
)

type Config struct {
	APIURL *url.URL // Base URL of the API as seen by clients
	Port   int

	// Cloud storage. The backend runs on local storage only if MongoURI is empty
	MongoURI      string
	MongoDatabase string
	MongoTimeout  time.Duration

	// Local fallback storage
	LocalDBPath    string
	LocalNamespace string

	// Notification fan-out. Disabled if AMQPURL is empty
	AMQPURL      string
	AMQPExchange string

	Currency currency.Unit
}

// Load reads a .env file in the working directory if there is one and
// then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

// FromEnv parses the environment. All problems are reported at once.
func FromEnv() (Config, error) {
	var errs []error

	cfg := Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "fintrack"),
		LocalDBPath:    getEnv("LOCAL_DB_PATH", "data/fintrack.db"),
		LocalNamespace: getEnv("LOCAL_NAMESPACE", "fintrack"),
		AMQPURL:        os.Getenv("AMQP_URL"),
		AMQPExchange:   getEnv("AMQP_EXCHANGE", "fintrack"),
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok || apiURL == "" {
		errs = append(errs, errors.New("environment variable API_URL must be set"))
	} else if u, err := url.Parse(apiURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("environment variable API_URL is not a valid absolute URL: %q", apiURL))
	} else {
		cfg.APIURL = u
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %q: must be a number between 1 and 65535", os.Getenv("PORT")))
	}
	cfg.Port = port

	cfg.MongoTimeout, err = time.ParseDuration(getEnv("MONGO_TIMEOUT", "5s"))
	if err != nil || cfg.MongoTimeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid MONGO_TIMEOUT %q: must be a positive duration", os.Getenv("MONGO_TIMEOUT")))
	}

	if cfg.AMQPURL != "" {
		if u, err := url.Parse(cfg.AMQPURL); err != nil || (u.Scheme != "amqp" && u.Scheme != "amqps") {
			errs = append(errs, errors.New("invalid AMQP_URL: scheme must be amqp or amqps"))
		}
	}

	cfg.Currency, err = currency.ParseISO(getEnv("CURRENCY", "EUR"))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid CURRENCY %q: must be an ISO 4217 currency code", os.Getenv("CURRENCY")))
	}

	return cfg, errors.Join(errs...)
}

// Address is the address the HTTP server listens on.
func (c Config) Address() string {
	return ":" + strconv.Itoa(c.Port)
}
