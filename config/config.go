package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Keycloak Keycloak
	Auth     Auth
	Log      Log
}

type Server struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Keycloak holds the admin API credentials of the service account used by the UMS.
type Keycloak struct {
	URL          string
	Realm        string
	ClientID     string
	ClientSecret string
	PageSize     int
}

// Auth configures bearer token validation. PublicKey is the realm RSA key,
// either as a PEM block or as the bare base64 body Keycloak shows in the admin console.
type Auth struct {
	PublicKey string
}

type Log struct {
	Level  string
	Pretty bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("KEYCLOAK_REALM", "master")
	viper.SetDefault("KEYCLOAK_PAGE_SIZE", 100)
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.AllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Keycloak.URL = viper.GetString("KEYCLOAK_URL")
	config.Keycloak.Realm = viper.GetString("KEYCLOAK_REALM")
	config.Keycloak.ClientID = viper.GetString("KEYCLOAK_CLIENT_ID")
	config.Keycloak.ClientSecret = viper.GetString("KEYCLOAK_CLIENT_SECRET")
	config.Keycloak.PageSize = viper.GetInt("KEYCLOAK_PAGE_SIZE")
	if config.Keycloak.PageSize <= 0 {
		config.Keycloak.PageSize = 100
	}

	config.Auth.PublicKey = viper.GetString("AUTH_PUBLIC_KEY")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Pretty = viper.GetBool("LOG_PRETTY")

	log.Info().
		Str("port", config.Server.Port).
		Str("database_host", config.Database.Host).
		Str("database_name", config.Database.Name).
		Str("keycloak_url", config.Keycloak.URL).
		Str("keycloak_realm", config.Keycloak.Realm).
		Msg("Config loaded")
	return &config, nil
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
