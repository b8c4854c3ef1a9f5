package config

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
init 與 read 分開
init : 設置 viper watch 與 onConfigChange
read : 一般讀取, 需要讀寫鎖
*/
var configSingleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ServerPort         string `mapstructure:"SERVER_PORT"`
	Env                string `mapstructure:"ENV"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	CorsAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DbAutoMigrate bool   `mapstructure:"DB_AUTO_MIGRATE"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	RazorpayKeyID     string `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `mapstructure:"RAZORPAY_KEY_SECRET"`
	RazorpayBaseURL   string `mapstructure:"RAZORPAY_BASE_URL"`

	KafkaBrokers     string `mapstructure:"KAFKA_BROKERS"`
	KafkaNotifyTopic string `mapstructure:"KAFKA_NOTIFY_TOPIC"`

	SmtpHost      string `mapstructure:"SMTP_HOST"`
	SmtpPort      int    `mapstructure:"SMTP_PORT"`
	SmtpUser      string `mapstructure:"SMTP_USER"`
	SmtpPassword  string `mapstructure:"SMTP_PASSWORD"`
	NotifyEmailTo string `mapstructure:"NOTIFY_EMAIL_TO"`

	TwilioAccountSID   string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken    string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppFrom string `mapstructure:"TWILIO_WHATSAPP_FROM"`

	PricingConfig string `mapstructure:"PRICING_CONFIG"`
	OrderIDPrefix string `mapstructure:"ORDER_ID_PREFIX"`

	RateLimitCapacity     int `mapstructure:"RATE_LIMIT_CAPACITY"`
	RateLimitRefillPerSec int `mapstructure:"RATE_LIMIT_REFILL_PER_SEC"`
	NotifyWorkers         int `mapstructure:"NOTIFY_WORKERS"`
	NotifyQueueSize       int `mapstructure:"NOTIFY_QUEUE_SIZE"`
}

var envKeys = []string{
	"SERVER_PORT", "ENV", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
	"DATABASE_URL", "DB_AUTO_MIGRATE",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"RAZORPAY_KEY_ID", "RAZORPAY_KEY_SECRET", "RAZORPAY_BASE_URL",
	"KAFKA_BROKERS", "KAFKA_NOTIFY_TOPIC",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASSWORD", "NOTIFY_EMAIL_TO",
	"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_WHATSAPP_FROM",
	"PRICING_CONFIG", "ORDER_ID_PREFIX",
	"RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL_PER_SEC", "NOTIFY_WORKERS", "NOTIFY_QUEUE_SIZE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "5001")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("RAZORPAY_BASE_URL", "https://api.razorpay.com")
	v.SetDefault("KAFKA_NOTIFY_TOPIC", "order-notifications")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("PRICING_CONFIG", "configs/pricing.yaml")
	v.SetDefault("ORDER_ID_PREFIX", "RG")
	v.SetDefault("RATE_LIMIT_CAPACITY", 30)
	v.SetDefault("RATE_LIMIT_REFILL_PER_SEC", 5)
	v.SetDefault("NOTIFY_WORKERS", 2)
	v.SetDefault("NOTIFY_QUEUE_SIZE", 256)
}

func GetConfig() *Config {
	initConfig()
	configSingleton.mu.RLock()
	defer configSingleton.mu.RUnlock()
	return configSingleton.Config
}

func initConfig() {
	muonce.Do(func() {
		configSingleton = &ConfigSingleTon{}
		cf, err := LoadConfig(".env")
		if err != nil {
			log.Fatalf("error read config: %v", err)
		}
		configSingleton.Config = cf

		// hot reload only makes sense when a file was actually read
		if viper.ConfigFileUsed() == "" {
			return
		}
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			cf, err := LoadConfig(".env")
			if err != nil {
				log.Printf("failed to reload config file %s: %v", e.Name, err)
				return
			}
			configSingleton.mu.Lock()
			configSingleton.Config = cf
			configSingleton.mu.Unlock()
		})
	})
}

// LoadConfig 讀取 .env 與環境變數, .env 不存在時只使用環境變數與預設值.
// 單純回傳錯誤, 由外部決定要不要 Fatal
func LoadConfig(envFile string) (*Config, error) {
	v := viper.GetViper()
	setDefaults(v)
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	cf := &Config{}
	if err := v.Unmarshal(cf); err != nil {
		return nil, err
	}
	return cf, nil
}

func (c *Config) IsDebug() bool {
	return c.Env == "debug" || c.Env == "development"
}

func (c *Config) RazorpayConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

func (c *Config) KafkaBrokerList() []string {
	return splitList(c.KafkaBrokers)
}

func (c *Config) CorsOrigins() []string {
	return splitList(c.CorsAllowedOrigins)
}

func (c *Config) NotifyEmailList() []string {
	return splitList(c.NotifyEmailTo)
}

func (c *Config) EmailConfigured() bool {
	return c.SmtpHost != "" && c.NotifyEmailTo != ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
