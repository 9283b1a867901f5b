package configs

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Viper *viper.Viper
}

func GetConfig() *Config {
	once.Do(func() {
		config = &Config{
			Viper: initializeViper(),
		}
	})
	return config
}

func initializeViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("No config file found, using defaults and environment: %v", err)
	}

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "tax_office")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("database.timezone", "UTC")

	v.SetDefault("redis.address", "localhost:6379")

	v.SetDefault("jwt.expiration_time", 86400)
	v.SetDefault("jwt.socket_token_expiration_time", 3600)

	v.SetDefault("socket.max_connections_per_user", 5)
	v.SetDefault("socket.heartbeat_interval_seconds", 30)
	v.SetDefault("socket.max_inbound_message_bytes", 1024)

	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.use_ssl", false)
}
