package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// AppConfig holds the application-level configuration
type AppConfig struct {
	Port          int    `mapstructure:"port"`
	StoragePath   string `mapstructure:"storage_path"`
	MaxUploadMB   int    `mapstructure:"max_upload_mb"`
	EncryptionKey string `mapstructure:"encryption_key"`
}

var Config *AppConfig

func LoadConfig(path string) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AutomaticEnv()

	viper.SetDefault("port", 8080)
	viper.SetDefault("storage_path", "./data")
	viper.SetDefault("max_upload_mb", 32)
	viper.SetDefault("encryption_key", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("⚠️ Could not read config file, using defaults: %v", err)
	}

	var appConfig AppConfig
	if err := viper.Unmarshal(&appConfig); err != nil {
		log.Fatalf("❌ Unable to decode config into struct: %v", err)
	}

	Config = &appConfig

	fmt.Println("✅ Configuration loaded successfully.")
}
