package config

import (
	"log"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
把init config跟read config分開
init : 需要設置viper watch 與 onConfigChange
read : 一般讀取 需要使用讀寫鎖
*/
var config_singleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ModulerName     string `mapstructure:"MODULER_NAME"`
	ServerPort      string `mapstructure:"SERVER_PORT"`
	DbName          string `mapstructure:"POSTGRES_DB"`
	DbHost          string `mapstructure:"POSTGRES_HOST"`
	DbPort          string `mapstructure:"POSTGRES_PORT"`
	DbUser          string `mapstructure:"POSTGRES_USER"`
	DbPas           string `mapstructure:"POSTGRES_PASSWORD"`
	DbNameTest      string `mapstructure:"POSTGRES_DB_TEST"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	KafkaBrokers    string `mapstructure:"KAFKA_BROKERS"`
	KafkaOrderTopic string `mapstructure:"KAFKA_ORDER_TOPIC"`
}

func GetConfig() *Config {
	initConfig()
	config_singleton.mu.RLock()
	defer config_singleton.mu.RUnlock()
	return config_singleton.Config
}

func initConfig() {
	if config_singleton == nil {
		muonce.Do(func() {
			config_singleton = &ConfigSingleTon{}
			if cf, err := loadConfig(); err == nil {
				config_singleton.Config = cf
			} else {
				log.Fatal("error read config")
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					config_singleton.Config = cf
				} else {
					log.Panic("failed to reload config file")
				}
			})
		})
	}
}

/*
單純回傳錯誤 由外部決定要不要Fatal, 畢竟有可能有替代方案
.env不存在時只吃環境變數
*/
func loadConfig() (cf *Config, err error) {
	config_singleton.mu.Lock()
	defer config_singleton.mu.Unlock()

	cf = &Config{}
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	bindEnvKeys()

	if readErr := viper.ReadInConfig(); readErr != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			err = readErr
			return
		}
	}

	err = viper.Unmarshal(cf)
	if err != nil {
		return
	}

	applyDefaults(cf)
	return
}

// viper.Unmarshal 不會自動讀取未出現在config file內的環境變數, 需要先bind
func bindEnvKeys() {
	for _, key := range []string{
		"MODULER_NAME", "SERVER_PORT",
		"POSTGRES_DB", "POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD",
		"POSTGRES_DB_TEST", "REDIS_ADDR", "KAFKA_BROKERS", "KAFKA_ORDER_TOPIC",
	} {
		viper.BindEnv(key)
	}
}

func applyDefaults(cf *Config) {
	if cf.ModulerName == "" {
		cf.ModulerName = "warehouse"
	}
	if cf.ServerPort == "" {
		cf.ServerPort = "8080"
	}
	if cf.KafkaOrderTopic == "" {
		cf.KafkaOrderTopic = "warehouse.orders"
	}
}
