package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

// ClientCredential is a pre-provisioned API client (gate terminal, resident
// app backend, admin console) allowed to obtain tokens.
type ClientCredential struct {
	ID     uint   `mapstructure:"id"`
	Name   string `mapstructure:"name"`
	Role   string `mapstructure:"role"`
	Secret string `mapstructure:"secret"`
}

type AuthConfig struct {
	JWT     JWTConfig          `mapstructure:"jwt"`
	Clients []ClientCredential `mapstructure:"clients"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// PermitConfig carries entry-permission policy knobs.
type PermitConfig struct {
	// DefaultValidityHours is the validity window applied when a create
	// request omits valid_until.
	DefaultValidityHours int `mapstructure:"default_validity_hours"`
	// QRTokenLength is the random portion length of minted QR tokens.
	QRTokenLength int `mapstructure:"qr_token_length"`
}

// GateConfig carries gate-endpoint rate limit settings.
type GateConfig struct {
	ValidatePerMinute int `mapstructure:"validate_per_minute"`
	ValidatePerHour   int `mapstructure:"validate_per_hour"`
}

type BiztimeConfig struct {
	Timezone string `mapstructure:"timezone"`
}
