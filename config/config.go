package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig holds environment driven configuration values.
// Secrets should never have defaults inside code and must come from the config file or the environment.
type AppConfig struct {
	AppPort  string
	SiteName string
	PageSize int
	// Sessions
	JWTSecret       string
	SessionCookie   string
	SessionTTLHours int
	SecureCookies   bool
	// Database
	DBDriver    string
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	// Redis for caching and token revocation; empty host selects the in-process store
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	// HTTP
	RateLimitPerMinute int
	AllowedOrigins     []string
	GinMode            string
	GinPath            string
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	// Precedence: config file -> defaults -> environment variable overrides
	path := getEnv("CONFIG_FILE", "")
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			log.Fatalf("invalid config file %s: %v", path, err)
		}
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set in the config file or environment variables")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// Set replaces the cached configuration. Defaults are applied to zero fields.
func Set(c AppConfig) {
	applyDefaults(&c)
	cfg = c
	loaded = true
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func findConfigFile() string {
	for _, name := range []string{"config.json", "config.yaml", "config.yml"} {
		p := filepath.Join("config", name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// fileConfig mirrors the grouped layout of config.json / config.yaml.
type fileConfig struct {
	App struct {
		AppPort            string   `json:"AppPort" yaml:"AppPort"`
		SiteName           string   `json:"SiteName" yaml:"SiteName"`
		PageSize           int      `json:"PageSize" yaml:"PageSize"`
		RateLimitPerMinute int      `json:"RateLimitPerMinute" yaml:"RateLimitPerMinute"`
		AllowedOrigins     []string `json:"AllowedOrigins" yaml:"AllowedOrigins"`
	} `json:"app" yaml:"app"`
	Session struct {
		JWTSecret string `json:"JWTSecret" yaml:"JWTSecret"`
		Cookie    string `json:"Cookie" yaml:"Cookie"`
		TTLHours  int    `json:"TTLHours" yaml:"TTLHours"`
		Secure    bool   `json:"Secure" yaml:"Secure"`
	} `json:"session" yaml:"session"`
	Gin struct {
		Mode    string `json:"Mode" yaml:"Mode"`
		LogPath string `json:"LogPath" yaml:"LogPath"`
	} `json:"gin" yaml:"gin"`
	Database struct {
		Driver      string `json:"Driver" yaml:"Driver"`
		DatabaseURI string `json:"DatabaseURI" yaml:"DatabaseURI"`
		DBHost      string `json:"DBHost" yaml:"DBHost"`
		DBPort      string `json:"DBPort" yaml:"DBPort"`
		DBUser      string `json:"DBUser" yaml:"DBUser"`
		DBPassword  string `json:"DBPassword" yaml:"DBPassword"`
		DBName      string `json:"DBName" yaml:"DBName"`
	} `json:"database" yaml:"database"`
	Redis struct {
		RedisHost     string `json:"RedisHost" yaml:"RedisHost"`
		RedisPort     int    `json:"RedisPort" yaml:"RedisPort"`
		RedisDB       int    `json:"RedisDB" yaml:"RedisDB"`
		RedisPassword string `json:"RedisPassword" yaml:"RedisPassword"`
	} `json:"redis" yaml:"redis"`
	Log struct {
		Level      string `json:"Level" yaml:"Level"`
		Path       string `json:"Path" yaml:"Path"`
		MaxSizeMB  int    `json:"MaxSizeMB" yaml:"MaxSizeMB"`
		MaxBackups int    `json:"MaxBackups" yaml:"MaxBackups"`
		MaxAgeDays int    `json:"MaxAgeDays" yaml:"MaxAgeDays"`
		Compress   bool   `json:"Compress" yaml:"Compress"`
	} `json:"log" yaml:"log"`
}

// loadConfigFile reads a JSON or YAML file, chosen by extension, into out.
func loadConfigFile(path string, out *AppConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	*out = AppConfig{
		AppPort:            fc.App.AppPort,
		SiteName:           fc.App.SiteName,
		PageSize:           fc.App.PageSize,
		RateLimitPerMinute: fc.App.RateLimitPerMinute,
		AllowedOrigins:     fc.App.AllowedOrigins,
		JWTSecret:          fc.Session.JWTSecret,
		SessionCookie:      fc.Session.Cookie,
		SessionTTLHours:    fc.Session.TTLHours,
		SecureCookies:      fc.Session.Secure,
		GinMode:            fc.Gin.Mode,
		GinPath:            fc.Gin.LogPath,
		DBDriver:           fc.Database.Driver,
		DatabaseURI:        fc.Database.DatabaseURI,
		DBHost:             fc.Database.DBHost,
		DBPort:             fc.Database.DBPort,
		DBUser:             fc.Database.DBUser,
		DBPassword:         fc.Database.DBPassword,
		DBName:             fc.Database.DBName,
		RedisHost:          fc.Redis.RedisHost,
		RedisPort:          fc.Redis.RedisPort,
		RedisDB:            fc.Redis.RedisDB,
		RedisPassword:      fc.Redis.RedisPassword,
		LogLevel:           fc.Log.Level,
		LogPath:            fc.Log.Path,
		LogMaxSizeMB:       fc.Log.MaxSizeMB,
		LogMaxBackups:      fc.Log.MaxBackups,
		LogMaxAgeDays:      fc.Log.MaxAgeDays,
		LogCompress:        fc.Log.Compress,
	}
	return nil
}

// applyDefaults sets sane defaults for zero-value fields.
func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.SiteName == "" {
		c.SiteName = "Blogsite"
	}
	if c.PageSize == 0 {
		c.PageSize = 20
	}
	if c.SessionCookie == "" {
		c.SessionCookie = "blogsite_session"
	}
	if c.SessionTTLHours == 0 {
		c.SessionTTLHours = 72
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 60
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.DBDriver == "" {
		c.DBDriver = "mysql"
	}
	if c.DBHost == "" {
		c.DBHost = "127.0.0.1"
	}
	if c.DBPort == "" {
		c.DBPort = "3306"
	}
	if c.DBUser == "" {
		c.DBUser = "root"
	}
	if c.DBName == "" {
		c.DBName = "blogsite"
	}
	if c.RedisPort == 0 {
		c.RedisPort = 6379
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

// applyEnvOverrides maps known environment variables onto config values when present.
func applyEnvOverrides(c *AppConfig) {
	strs := map[string]*string{
		"APP_PORT":       &c.AppPort,
		"SITE_NAME":      &c.SiteName,
		"JWT_SECRET":     &c.JWTSecret,
		"SESSION_COOKIE": &c.SessionCookie,
		"GIN_MODE":       &c.GinMode,
		"GIN_PATH":       &c.GinPath,
		"DB_DRIVER":      &c.DBDriver,
		"DATABASE_URI":   &c.DatabaseURI,
		"DB_HOST":        &c.DBHost,
		"DB_PORT":        &c.DBPort,
		"DB_USER":        &c.DBUser,
		"DB_PASSWORD":    &c.DBPassword,
		"DB_NAME":        &c.DBName,
		"REDIS_HOST":     &c.RedisHost,
		"REDIS_PASSWORD": &c.RedisPassword,
		"LOG_LEVEL":      &c.LogLevel,
		"LOG_PATH":       &c.LogPath,
	}
	for key, dst := range strs {
		if v := getEnv(key, ""); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"PAGE_SIZE":             &c.PageSize,
		"SESSION_TTL_HOURS":     &c.SessionTTLHours,
		"REDIS_PORT":            &c.RedisPort,
		"REDIS_DB":              &c.RedisDB,
		"RATE_LIMIT_PER_MINUTE": &c.RateLimitPerMinute,
		"LOG_MAX_SIZE_MB":       &c.LogMaxSizeMB,
		"LOG_MAX_BACKUPS":       &c.LogMaxBackups,
		"LOG_MAX_AGE_DAYS":      &c.LogMaxAgeDays,
	}
	for key, dst := range ints {
		if v := getEnv(key, ""); v != "" {
			*dst = mustParseInt(v)
		}
	}

	bools := map[string]*bool{
		"SECURE_COOKIES": &c.SecureCookies,
		"LOG_COMPRESS":   &c.LogCompress,
	}
	for key, dst := range bools {
		if v := getEnv(key, ""); v != "" {
			*dst = v == "true"
		}
	}

	if v := getEnv("CORS_ALLOWED_ORIGINS", ""); v != "" {
		c.AllowedOrigins = splitAndTrim(v)
	}
}

func mustParseInt(val string) int {
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("invalid integer value %s: %v", val, err)
	}
	return i
}

func splitAndTrim(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
