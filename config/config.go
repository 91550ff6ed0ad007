package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/models"
)

type Config struct {
	Server    ServerConfig
	Inventory InventoryConfig
	Defaults  DefaultsConfig
	Site      models.SiteInfo
}

type ServerConfig struct {
	Port string
	Env  string
}

type InventoryConfig struct {
	LowStockThreshold int  `mapstructure:"low_stock_threshold"`
	SeedSampleData    bool `mapstructure:"seed_sample_data"`
}

type DefaultsConfig struct {
	CompanyName    string `mapstructure:"company_name"`
	CompanyLogo    string `mapstructure:"company_logo"`
	CompanyAddress string `mapstructure:"company_address"`
	CompanyPhone   string `mapstructure:"company_phone"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()
	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOW_STOCK_THRESHOLD", 20)
	viper.SetDefault("SEED_SAMPLE_DATA", true)

	AppConfig = &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Inventory: InventoryConfig{
			LowStockThreshold: viper.GetInt("LOW_STOCK_THRESHOLD"),
			SeedSampleData:    viper.GetBool("SEED_SAMPLE_DATA"),
		},
		Defaults: DefaultsConfig{
			CompanyName:    viper.GetString("COMPANY_NAME"),
			CompanyLogo:    viper.GetString("COMPANY_LOGO"),
			CompanyAddress: viper.GetString("COMPANY_ADDRESS"),
			CompanyPhone:   viper.GetString("COMPANY_PHONE"),
		},
	}

	// Load TOML Config for Site Info
	siteViper := viper.New()
	siteViper.SetConfigFile("config/config.toml")
	siteViper.SetConfigType("toml")
	if err := siteViper.ReadInConfig(); err != nil {
		log.Printf("Warning: config/config.toml not found, using empty site info: %v", err)
	} else {
		if err := siteViper.UnmarshalKey("site", &AppConfig.Site); err != nil {
			log.Printf("Error: Failed to unmarshal site info from TOML: %v", err)
		}
	}

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- Low Stock Threshold: %d", AppConfig.Inventory.LowStockThreshold)
	log.Printf("- Seed Sample Data: %v", AppConfig.Inventory.SeedSampleData)
	log.Printf("- Company Name: %s", AppConfig.Defaults.CompanyName)
}
