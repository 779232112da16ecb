package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort          string `yaml:"APP_PORT"`
	AppURL           string `yaml:"APP_URL"`
	LogFile          string `yaml:"LOG_FILE"`
	RateLimitMax     int    `yaml:"RATE_LIMIT_MAX"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`

	// Database configuration
	DBType         string `yaml:"DB_TYPE"`
	DBUser         string `yaml:"DB_USER"`
	DBName         string `yaml:"DB_NAME"`
	DBPassword     string `yaml:"DB_PASSWORD"`
	DBPort         string `yaml:"DB_PORT"`
	DBHost         string `yaml:"DB_HOST"`
	DBSSLMode      string `yaml:"DB_SSLMODE"`
	DBTimeZone     string `yaml:"DB_TIMEZONE"`
	DBMaxOpenConns int    `yaml:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int    `yaml:"DB_MAX_IDLE_CONNS"`
	DBLogSQL       bool   `yaml:"DB_LOG_SQL"`

	// JWT
	JWTSecret     string `yaml:"JWT_SECRET"`
	JWTIssuer     string `yaml:"JWT_ISSUER"`
	JWTTTLMinutes int    `yaml:"JWT_TTL_MINUTES"`

	// File storage
	StorageDriver     string `yaml:"STORAGE_DRIVER"`
	StoragePublicRoot string `yaml:"STORAGE_PUBLIC_ROOT"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`

	// Weather passthrough
	WeatherBaseURL        string `yaml:"WEATHER_BASE_URL"`
	WeatherTimeoutSeconds int    `yaml:"WEATHER_TIMEOUT_SECONDS"`
}

var config = DefaultConfig()

func DefaultConfig() Config {
	return Config{
		AppPort:               "8080",
		AppURL:                "http://localhost:8080",
		LogFile:               "./logs/app.log",
		RateLimitMax:          20,
		CORSAllowOrigins:      "*",
		DBType:                "postgres",
		DBHost:                "localhost",
		DBPort:                "5432",
		DBUser:                "postgres",
		DBName:                "dishandmovie",
		DBSSLMode:             "disable",
		DBTimeZone:            "UTC",
		DBMaxOpenConns:        25,
		DBMaxIdleConns:        5,
		JWTIssuer:             "DISHANDMOVIE",
		JWTTTLMinutes:         120,
		StorageDriver:         "local",
		StoragePublicRoot:     "./public",
		WeatherBaseURL:        "https://goweather.herokuapp.com/weather",
		WeatherTimeoutSeconds: 10,
	}
}

// LoadConfig reads .env, then the YAML file named by CONFIG_PATH (default
// config.yaml), then lets environment variables override single keys.
func LoadConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error reading .env file: %s\n", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	applyEnv(&config)
}

// SetConfig replaces the loaded configuration.
func SetConfig(c Config) {
	config = c
}

func CurrentConfig() Config {
	return config
}

func (c *Config) stringFields() map[string]*string {
	return map[string]*string{
		"APP_PORT":            &c.AppPort,
		"APP_URL":             &c.AppURL,
		"LOG_FILE":            &c.LogFile,
		"CORS_ALLOW_ORIGINS":  &c.CORSAllowOrigins,
		"DB_TYPE":             &c.DBType,
		"DB_USER":             &c.DBUser,
		"DB_NAME":             &c.DBName,
		"DB_PASSWORD":         &c.DBPassword,
		"DB_PORT":             &c.DBPort,
		"DB_HOST":             &c.DBHost,
		"DB_SSLMODE":          &c.DBSSLMode,
		"DB_TIMEZONE":         &c.DBTimeZone,
		"JWT_SECRET":          &c.JWTSecret,
		"JWT_ISSUER":          &c.JWTIssuer,
		"STORAGE_DRIVER":      &c.StorageDriver,
		"STORAGE_PUBLIC_ROOT": &c.StoragePublicRoot,
		"AWS_S3_BUCKET":       &c.AWSS3Bucket,
		"AWS_S3_REGION":       &c.AWSS3Region,
		"AWS_ACCESS_KEY":      &c.AWSAccessKey,
		"AWS_SECRET_KEY":      &c.AWSSecretKey,
		"AWS_S3_ENDPOINT":     &c.AWSS3Endpoint,
		"WEATHER_BASE_URL":    &c.WeatherBaseURL,
	}
}

func (c *Config) intFields() map[string]*int {
	return map[string]*int{
		"RATE_LIMIT_MAX":          &c.RateLimitMax,
		"DB_MAX_OPEN_CONNS":       &c.DBMaxOpenConns,
		"DB_MAX_IDLE_CONNS":       &c.DBMaxIdleConns,
		"JWT_TTL_MINUTES":         &c.JWTTTLMinutes,
		"WEATHER_TIMEOUT_SECONDS": &c.WeatherTimeoutSeconds,
	}
}

func applyEnv(c *Config) {
	for key, target := range c.stringFields() {
		if value, ok := os.LookupEnv(key); ok {
			*target = value
		}
	}
	for key, target := range c.intFields() {
		if value, ok := os.LookupEnv(key); ok {
			if n, err := strconv.Atoi(value); err == nil {
				*target = n
			}
		}
	}
	if value, ok := os.LookupEnv("DB_LOG_SQL"); ok {
		c.DBLogSQL, _ = strconv.ParseBool(value)
	}
}

func GetConfig(key string) string {
	if target, ok := config.stringFields()[key]; ok {
		return *target
	}
	if target, ok := config.intFields()[key]; ok {
		return strconv.Itoa(*target)
	}
	if key == "DB_LOG_SQL" {
		return strconv.FormatBool(config.DBLogSQL)
	}
	return ""
}

func GetConfigInt(key string) int {
	if target, ok := config.intFields()[key]; ok {
		return *target
	}
	n, _ := strconv.Atoi(GetConfig(key))
	return n
}
