package config

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys of the API credentials. They are also the prompts shown
// when a value is missing in interactive mode.
const (
	EnvClientID     = "CCW_CLIENTID"
	EnvClientSecret = "CCW_CLIENTSECRET"
	EnvUsername     = "CCO_USERNAME"
	EnvPassword     = "CCO_PASSWORD"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Kafka  KafkaConfig
	CCW    CCWConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type KafkaConfig struct {
	Brokers        []string
	OrderLineTopic string
	LookupTopic    string
	ConsumerGroup  string
}

type CCWConfig struct {
	BaseURL        string
	SSOURL         string
	ClientID       string
	ClientSecret   string
	Username       string
	Password       string
	TimeoutSeconds int
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "ccw_query"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8030),
		},
		Kafka: KafkaConfig{
			Brokers:        splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")),
			OrderLineTopic: getEnv("KAFKA_ORDER_LINE_TOPIC", "ccw.order-lines"),
			LookupTopic:    getEnv("KAFKA_LOOKUP_TOPIC", "ccw.order-lookups"),
			ConsumerGroup:  getEnv("KAFKA_CONSUMER_GROUP", "ccw-query"),
		},
		CCW: CCWConfig{
			BaseURL:        getEnv("CCW_BASE_URL", "https://api.cisco.com/"),
			SSOURL:         getEnv("CCW_SSO_URL", "https://cloudsso.cisco.com/as/token.oauth2"),
			ClientID:       getEnv(EnvClientID, ""),
			ClientSecret:   getEnv(EnvClientSecret, ""),
			Username:       getEnv(EnvUsername, currentUser()),
			Password:       getEnv(EnvPassword, ""),
			TimeoutSeconds: getEnvAsInt("CCW_TIMEOUT_SECONDS", 60),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (c CCWConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Missing lists the credential keys that have no value, in prompt order.
func (c CCWConfig) Missing() []string {
	var out []string
	for _, kv := range []struct {
		key, val string
	}{
		{EnvClientID, c.ClientID},
		{EnvClientSecret, c.ClientSecret},
		{EnvUsername, c.Username},
		{EnvPassword, c.Password},
	} {
		if kv.val == "" {
			out = append(out, kv.key)
		}
	}
	return out
}

// Set assigns a credential by its environment key.
func (c *CCWConfig) Set(key, value string) error {
	switch key {
	case EnvClientID:
		c.ClientID = value
	case EnvClientSecret:
		c.ClientSecret = value
	case EnvUsername:
		c.Username = value
	case EnvPassword:
		c.Password = value
	default:
		return fmt.Errorf("unknown credential %q", key)
	}
	return nil
}

// IsSecret reports whether a credential must not be echoed when typed.
func IsSecret(key string) bool {
	return key == EnvClientSecret || key == EnvPassword
}

// Validate fails when any credential is still empty.
func (c CCWConfig) Validate() error {
	if missing := c.Missing(); len(missing) > 0 {
		return fmt.Errorf("missing credentials: %s", strings.Join(missing, ", "))
	}
	return nil
}

/* ================= helpers ================= */

// validate only covers settings that have no sane fallback. Credentials are
// checked by the commands that need them, after any interactive prompt.
func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers is empty")
	}
	if c.CCW.BaseURL == "" || c.CCW.SSOURL == "" {
		return fmt.Errorf("CCW_BASE_URL and CCW_SSO_URL are required")
	}
	if c.CCW.TimeoutSeconds <= 0 {
		return fmt.Errorf("CCW_TIMEOUT_SECONDS is invalid")
	}
	return nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
