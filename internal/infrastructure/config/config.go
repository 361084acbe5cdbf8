package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string
	AppName string

	// Database
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMigrationMode string // 資料表遷移模式: "auto"(預設), "none"(不遷移)
	DBLogLevel      string // gorm 日誌級別: silent, error, warn, info

	// Server
	ServerPort       string
	CORSAllowOrigins []string

	// Logging
	LogLevel string
	LogDir   string

	// 是否在回應中附帶錯誤細節與堆疊
	ExposeErrorDetail bool

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// MQTT，BrokerURL 為空代表停用刷新通知
	MQTTBrokerURL    string
	MQTTClientID     string
	MQTTUsername     string
	MQTTPassword     string
	MQTTQoS          int
	MQTTRefreshTopic string

	// JWT Authentication
	JWTSecretKey      string
	JWTIssuer         string
	JWTAudience       string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration
	BasicAuthKey      string // 登入用的預共享金鑰 (Authorization: Basic ...)
	CaptchaStore      string // "db" 或 "redis"
	CaptchaTTL        time.Duration
	CaptchaPurgeCron  string
	CaptchaCodeLength int

	// Files
	UploadDir string
	ReportDir string

	// Admin
	DefaultAdminID       string
	DefaultAdminPassword string
}

// LoadConfig loads config from environment variables (and an optional config.yaml) based on ENV_TYPE
func LoadConfig() *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Printf("Warning: failed to read config.yaml: %v\n", err)
		}
	}
	v.AutomaticEnv()

	envType := strings.ToUpper(getEnv(v, "ENV_TYPE", "LOCAL"))
	prefix := ""

	// Set prefix based on environment type
	switch envType {
	case "LOCAL":
		prefix = "LOCAL_"
	case "SERVER":
		prefix = "SERVER_"
	default:
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	tmp := os.TempDir()

	return &Config{
		EnvType: envType,
		AppName: getEnv(v, "APP_NAME", "factory-monitor-service"),

		// Database config - use environment-specific variables if available
		DBHost:          getEnvRequired(v, prefix+"DB_HOST"),
		DBUser:          getEnvRequired(v, prefix+"DB_USER"),
		DBPassword:      getEnv(v, prefix+"DB_PASSWORD", ""),
		DBName:          getEnvRequired(v, prefix+"DB_NAME"),
		DBPort:          getEnv(v, prefix+"DB_PORT", "3306"),
		DBMigrationMode: getEnv(v, prefix+"DB_MIGRATION_MODE", "auto"),
		DBLogLevel:      getEnv(v, "DB_LOG_LEVEL", "warn"),

		// Server config
		ServerPort:       getEnv(v, prefix+"SERVER_PORT", getEnv(v, "SERVER_PORT", "8080")),
		CORSAllowOrigins: splitList(getEnv(v, "CORS_ALLOW_ORIGINS", "http://localhost:3000")),

		LogLevel: getEnv(v, "LOG_LEVEL", "info"),
		LogDir:   getEnv(v, "LOG_DIR", "logs"),

		// 本機環境預設回傳錯誤細節
		ExposeErrorDetail: getEnvAsBool(v, "EXPOSE_ERROR_DETAIL", envType == "LOCAL"),

		// Redis config
		RedisHost:     getEnv(v, prefix+"REDIS_HOST", getEnv(v, "REDIS_HOST", "localhost")),
		RedisPort:     getEnv(v, prefix+"REDIS_PORT", getEnv(v, "REDIS_PORT", "6379")),
		RedisPassword: getEnv(v, "REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt(v, "REDIS_DB", 0),

		// MQTT config
		MQTTBrokerURL:    getEnv(v, "MQTT_BROKER_URL", ""),
		MQTTClientID:     getEnv(v, "MQTT_CLIENT_ID", "factory_monitor"),
		MQTTUsername:     getEnv(v, "MQTT_USERNAME", ""),
		MQTTPassword:     getEnv(v, "MQTT_PASSWORD", ""),
		MQTTQoS:          getEnvAsInt(v, "MQTT_QOS", 1),
		MQTTRefreshTopic: getEnv(v, "MQTT_REFRESH_TOPIC", "snb/dashboard/refresh"),

		// JWT Config
		JWTSecretKey:      getEnv(v, "JWT_SECRET_KEY", "factory-monitor-secret-change-in-production"),
		JWTIssuer:         getEnv(v, "JWT_ISSUER", "factory-monitor-service"),
		JWTAudience:       getEnv(v, "JWT_AUDIENCE", "factory-monitor-web"),
		AccessTokenTTL:    time.Duration(getEnvAsInt(v, "JWT_EXPIRE_MINUTES", 30)) * time.Minute,
		RefreshTokenTTL:   time.Duration(getEnvAsInt(v, "REFRESH_TOKEN_EXPIRE_MINUTES", 120)) * time.Minute,
		BasicAuthKey:      getEnv(v, "BASIC_AUTH_KEY", ""),
		CaptchaStore:      strings.ToLower(getEnv(v, "CAPTCHA_STORE", "db")),
		CaptchaTTL:        time.Duration(getEnvAsInt(v, "CAPTCHA_EXPIRE_MINUTES", 5)) * time.Minute,
		CaptchaPurgeCron:  getEnv(v, "CAPTCHA_PURGE_CRON", "@every 10m"),
		CaptchaCodeLength: getEnvAsInt(v, "CAPTCHA_LENGTH", 4),

		UploadDir: getEnv(v, "UPLOAD_DIR", filepath.Join(tmp, "snb-upload")),
		ReportDir: getEnv(v, "REPORT_DIR", filepath.Join(tmp, "snb-report")),

		DefaultAdminID:       getEnv(v, "DEFAULT_ADMIN_ID", "admin"),
		DefaultAdminPassword: getEnv(v, "DEFAULT_ADMIN_PASSWORD", ""),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// MQTTEnabled 是否設定了 MQTT broker
func (c *Config) MQTTEnabled() bool {
	return c.MQTTBrokerURL != ""
}

func getEnv(v *viper.Viper, key, defaultValue string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return defaultValue
}

func getEnvAsInt(v *viper.Viper, key string, defaultValue int) int {
	if !v.IsSet(key) {
		return defaultValue
	}
	if n := v.GetInt(key); n != 0 || v.GetString(key) == "0" {
		return n
	}
	return defaultValue
}

func getEnvAsBool(v *viper.Viper, key string, defaultValue bool) bool {
	if !v.IsSet(key) {
		return defaultValue
	}
	return v.GetBool(key)
}

// 要求必須提供環境變數的輔助函式
func getEnvRequired(v *viper.Viper, key string) string {
	if value := getEnv(v, key, ""); value != "" {
		return value
	}
	panic(fmt.Sprintf("Required environment variable %s is not set", key))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
