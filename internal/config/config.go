package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration, read from environment
// variables with an optional config file (env vars win).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	DB      DBConfig
	Redis   RedisConfig
	Refresh RefreshConfig
	Limits  Thresholds
}

type AppConfig struct {
	Env       string // development, staging, production
	Name      string
	LogLevel  string
	ExportDir string
}

type HTTPConfig struct {
	Host               string
	Port               int
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// DBConfig holds the optional Postgres connection. When URL is empty
// the service runs on the seeded in-memory record store.
type DBConfig struct {
	URL string
}

func (c DBConfig) Enabled() bool { return c.URL != "" }

// RedisConfig holds the optional snapshot cache connection.
type RedisConfig struct {
	Addr     string
	Password string
	TTL      time.Duration
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// RefreshConfig controls the record store poller.
type RefreshConfig struct {
	Enabled  bool
	Interval time.Duration
}

// Thresholds centralizes every classification cutoff so dashboards
// never drift apart on what counts as warning or critical.
type Thresholds struct {
	DeliveryOnTimePct float64 // on-time % at or above which delivery is good
	DeliveryWarnBand  float64 // width of the warning band below the threshold
	QualityGood       float64 // 0-5 quality score floor for "good"
	QualityWarn       float64 // 0-5 quality score floor for "warning"
	ComplianceGood    float64 // contract compliance % floor for "good"
	ComplianceWarn    float64 // contract compliance % floor for "warning"
	EfficiencyGood    float64 // location efficiency % floor for "good"
	EfficiencyWarn    float64 // location efficiency % floor for "warning"
	StockWarnFactor   float64 // multiple of reorder point marking the warning band
}

// Load reads configuration via Viper. A missing config file is not an
// error; defaults keep the service runnable out of the box.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:       v.GetString("app.env"),
			Name:      v.GetString("app.name"),
			LogLevel:  v.GetString("app.log_level"),
			ExportDir: v.GetString("app.export_dir"),
		},
		HTTP: HTTPConfig{
			Host:               v.GetString("http.host"),
			Port:               v.GetInt("http.port"),
			RateLimitPerSecond: v.GetFloat64("http.rate_limit_per_second"),
			RateLimitBurst:     v.GetInt("http.rate_limit_burst"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Expiration: v.GetDuration("jwt.expiration"),
		},
		DB: DBConfig{
			URL: v.GetString("database.url"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			TTL:      v.GetDuration("redis.ttl"),
		},
		Refresh: RefreshConfig{
			Enabled:  v.GetBool("refresh.enabled"),
			Interval: v.GetDuration("refresh.interval"),
		},
		Limits: Thresholds{
			DeliveryOnTimePct: v.GetFloat64("thresholds.delivery_on_time_pct"),
			DeliveryWarnBand:  v.GetFloat64("thresholds.delivery_warn_band"),
			QualityGood:       v.GetFloat64("thresholds.quality_good"),
			QualityWarn:       v.GetFloat64("thresholds.quality_warn"),
			ComplianceGood:    v.GetFloat64("thresholds.compliance_good"),
			ComplianceWarn:    v.GetFloat64("thresholds.compliance_warn"),
			EfficiencyGood:    v.GetFloat64("thresholds.efficiency_good"),
			EfficiencyWarn:    v.GetFloat64("thresholds.efficiency_warn"),
			StockWarnFactor:   v.GetFloat64("thresholds.stock_warn_factor"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: jwt.secret (JWT_SECRET) is required")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.name", "darkstore-analytics")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("app.export_dir", "exports")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.rate_limit_per_second", 20)
	v.SetDefault("http.rate_limit_burst", 40)

	v.SetDefault("jwt.expiration", 15*time.Minute)

	v.SetDefault("redis.ttl", 30*time.Second)

	v.SetDefault("refresh.enabled", true)
	v.SetDefault("refresh.interval", 30*time.Second)

	v.SetDefault("thresholds.delivery_on_time_pct", 95)
	v.SetDefault("thresholds.delivery_warn_band", 5)
	v.SetDefault("thresholds.quality_good", 4.5)
	v.SetDefault("thresholds.quality_warn", 4.0)
	v.SetDefault("thresholds.compliance_good", 95)
	v.SetDefault("thresholds.compliance_warn", 90)
	v.SetDefault("thresholds.efficiency_good", 90)
	v.SetDefault("thresholds.efficiency_warn", 85)
	v.SetDefault("thresholds.stock_warn_factor", 1.5)
}
