package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Persistence
	DBPath     string `mapstructure:"DB_PATH"`
	DataDir    string `mapstructure:"DATA_DIR"`
	ExportsDir string `mapstructure:"EXPORTS_DIR"`
	BackupDir  string `mapstructure:"BACKUP_DIR"`

	// Catalog spreadsheets (read once at startup)
	StockFile string `mapstructure:"STOCK_FILE"`
	SitesFile string `mapstructure:"SITES_FILE"`

	// Export retention: keep the newest ExportKeep automatic exports and
	// generate one every ExportEvery successful mutations.
	ExportKeep  int `mapstructure:"EXPORT_KEEP"`
	ExportEvery int `mapstructure:"EXPORT_EVERY"`

	// Remote archival repo (GitHub contents API). Empty token disables pushes.
	GitHubToken  string `mapstructure:"GITHUB_TOKEN"`
	GitHubRepo   string `mapstructure:"GITHUB_REPO"` // "owner/name"
	GitHubBranch string `mapstructure:"GITHUB_BRANCH"`

	// Auth — single admin user, credentials supplied out-of-band.
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	AdminUser          string `mapstructure:"ADMIN_USER"`
	AdminPasswordHash  string `mapstructure:"ADMIN_PASSWORD_HASH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_PATH", "inventario.db")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("EXPORTS_DIR", "exports")
	viper.SetDefault("BACKUP_DIR", "backups")
	viper.SetDefault("STOCK_FILE", "data/Stock.xlsx")
	viper.SetDefault("SITES_FILE", "data/SITES.xlsx")
	viper.SetDefault("EXPORT_KEEP", 5)
	viper.SetDefault("EXPORT_EVERY", 10)
	viper.SetDefault("GITHUB_BRANCH", "main")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("ADMIN_USER", "Usuario")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
