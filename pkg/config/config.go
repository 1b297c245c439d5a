package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Moderation ModerationConfig `mapstructure:"moderation"`
	Aliyun     AliyunConfig     `mapstructure:"aliyun"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	MetricsPort    int           `mapstructure:"metrics_port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type ModerationConfig struct {
	// BaseURL resolves relative image sources and builds content links.
	BaseURL     string `mapstructure:"base_url"`
	TextEnabled bool   `mapstructure:"text_enabled"`
}

type AliyunConfig struct {
	AccessKeyID        string        `mapstructure:"access_key_id"`
	AccessKeySecret    string        `mapstructure:"access_key_secret"`
	Region             string        `mapstructure:"region"`
	Endpoint           string        `mapstructure:"endpoint"`
	Service            string        `mapstructure:"service"`
	RiskLevelAllowList []string      `mapstructure:"risk_level_allow_list"`
	Timeout            time.Duration `mapstructure:"timeout"`
	Breaker            BreakerConfig `mapstructure:"breaker"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type KafkaConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	Topic   string `mapstructure:"topic"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

var ErrConfigNotFound = errors.New("config file not found")

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.request_timeout", "30s")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("moderation.base_url", "")
	v.SetDefault("moderation.text_enabled", false)
	v.SetDefault("aliyun.access_key_id", "")
	v.SetDefault("aliyun.access_key_secret", "")
	v.SetDefault("aliyun.region", "cn-shanghai")
	v.SetDefault("aliyun.endpoint", "")
	v.SetDefault("aliyun.service", "baselineCheck")
	v.SetDefault("aliyun.risk_level_allow_list", "none,low")
	v.SetDefault("aliyun.timeout", "10s")
	v.SetDefault("aliyun.breaker.max_failures", 5)
	v.SetDefault("aliyun.breaker.timeout", "30s")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.host", "")
	v.SetDefault("kafka.port", "9092")
	v.SetDefault("kafka.topic", "imageguard.audit")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads config.yaml from configPath, ./config or the working directory,
// with environment overrides such as ALIYUN_ACCESS_KEY_ID. A missing file is
// reported as ErrConfigNotFound alongside a usable env-only Config.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaultValues(v)

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, fmt.Errorf("error reading config file config.yaml: %w", err)
		}
		notFound = fmt.Errorf("%w: using only environment variables", ErrConfigNotFound)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHook())); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Aliyun.RiskLevelAllowList = trimEmpty(cfg.Aliyun.RiskLevelAllowList)

	return cfg, notFound
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func trimEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (c Config) Validate() error {
	var errs []error
	if c.Aliyun.AccessKeyID == "" {
		errs = append(errs, errors.New("aliyun.access_key_id is required"))
	}
	if c.Aliyun.AccessKeySecret == "" {
		errs = append(errs, errors.New("aliyun.access_key_secret is required"))
	}
	if c.Aliyun.Timeout <= 0 {
		errs = append(errs, errors.New("aliyun.timeout must be positive"))
	}
	if c.Aliyun.Breaker.Timeout <= 0 {
		errs = append(errs, errors.New("aliyun.breaker.timeout must be positive"))
	}
	if c.Moderation.BaseURL == "" {
		errs = append(errs, errors.New("moderation.base_url is required"))
	}
	if c.Server.Port <= 0 {
		errs = append(errs, errors.New("server.port must be positive"))
	}
	if c.Kafka.Enabled && c.Kafka.Host == "" {
		errs = append(errs, errors.New("kafka.host is required when kafka is enabled"))
	}
	return errors.Join(errs...)
}

// AllowListCSV is the allow-list in the comma separated form used by the
// moderation policy.
func (a AliyunConfig) AllowListCSV() string {
	return strings.Join(a.RiskLevelAllowList, ",")
}

// KafkaSettings returns the sink settings in the generic map form decoded by
// the audit log sink.
func (k KafkaConfig) KafkaSettings() map[string]interface{} {
	return map[string]interface{}{
		"host":  k.Host,
		"port":  k.Port,
		"topic": k.Topic,
	}
}
