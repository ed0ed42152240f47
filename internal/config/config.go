package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Mail       MailConfig       `mapstructure:"mail"`
	Dispatcher DispatcherConfig `mapstructure:"dispatcher"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// MailConfig holds outbound mail configuration. Either the SMTP relay or the
// Gmail API is used, selected by UseGmailAPI.
type MailConfig struct {
	From       string `mapstructure:"from"`
	SenderName string `mapstructure:"sender_name"`

	UseGmailAPI bool `mapstructure:"use_gmail_api"`

	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUsername string `mapstructure:"smtp_username"`
	SMTPPassword string `mapstructure:"smtp_password"`

	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RefreshToken string `mapstructure:"refresh_token"`
	UserEmail    string `mapstructure:"user_email"`
}

// DispatcherConfig holds mail dispatcher configuration
type DispatcherConfig struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
	BatchSize       int `mapstructure:"batch_size"`
}

// LoadConfig loads configuration from environment variables and config file
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables override config file
	viper.AutomaticEnv()

	// Bind environment variables
	bindEnvVars()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)

	viper.SetDefault("mail.sender_name", "AI•TECH Solutions")
	viper.SetDefault("mail.use_gmail_api", false)
	viper.SetDefault("mail.smtp_port", 587)

	viper.SetDefault("dispatcher.interval_seconds", 15)
	viper.SetDefault("dispatcher.batch_size", 20)
}

// bindEnvVars binds environment variables to configuration keys
func bindEnvVars() {
	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	// Database
	viper.BindEnv("database.host", "DB_HOST")
	viper.BindEnv("database.port", "DB_PORT")
	viper.BindEnv("database.user", "DB_USER")
	viper.BindEnv("database.password", "DB_PASSWORD")
	viper.BindEnv("database.dbname", "DB_NAME")

	// Mail
	viper.BindEnv("mail.from", "MAIL_FROM")
	viper.BindEnv("mail.sender_name", "MAIL_SENDER_NAME")
	viper.BindEnv("mail.use_gmail_api", "MAIL_USE_GMAIL_API")
	viper.BindEnv("mail.smtp_host", "MAIL_SMTP_HOST")
	viper.BindEnv("mail.smtp_port", "MAIL_SMTP_PORT")
	viper.BindEnv("mail.smtp_username", "MAIL_SMTP_USERNAME")
	viper.BindEnv("mail.smtp_password", "MAIL_SMTP_PASSWORD")
	viper.BindEnv("mail.client_id", "MAIL_CLIENT_ID")
	viper.BindEnv("mail.client_secret", "MAIL_CLIENT_SECRET")
	viper.BindEnv("mail.refresh_token", "MAIL_REFRESH_TOKEN")
	viper.BindEnv("mail.user_email", "MAIL_USER_EMAIL")

	// Dispatcher
	viper.BindEnv("dispatcher.interval_seconds", "DISPATCHER_INTERVAL_SECONDS")
	viper.BindEnv("dispatcher.batch_size", "DISPATCHER_BATCH_SIZE")
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("database host, user, and dbname are required")
	}

	if c.Mail.From == "" {
		return fmt.Errorf("mail sender address is required")
	}

	if c.Mail.UseGmailAPI {
		if c.Mail.ClientID == "" || c.Mail.ClientSecret == "" || c.Mail.RefreshToken == "" {
			return fmt.Errorf("Gmail OAuth2 credentials are required when using the Gmail API")
		}
	} else {
		if c.Mail.SMTPHost == "" || c.Mail.SMTPUsername == "" || c.Mail.SMTPPassword == "" {
			return fmt.Errorf("SMTP credentials are required when not using the Gmail API")
		}
	}

	if c.Dispatcher.IntervalSeconds <= 0 {
		return fmt.Errorf("dispatcher interval must be greater than 0")
	}
	if c.Dispatcher.BatchSize <= 0 {
		return fmt.Errorf("dispatcher batch size must be greater than 0")
	}

	return nil
}
