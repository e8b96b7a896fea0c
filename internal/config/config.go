package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"venueadmin/internal/domain"
	"venueadmin/internal/infrastructure/auth"
)

type Config struct {
	HTTPAddr         string
	DatabaseURL      string
	MigrationsPath   string
	DefaultLocale    string
	Credentials      []auth.Credential
	ReminderInterval time.Duration
	ReminderWindow   int // days ahead to look for unsettled events
}

// Load carga la configuración desde las variables de entorno y la valida.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env es opcional cuando las variables vienen del entorno (Docker, CI, etc.).
	}

	cfg := &Config{
		HTTPAddr:       ":" + getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		DefaultLocale:  getEnv("DEFAULT_LOCALE", "es"),
		ReminderWindow: 7,
	}

	interval := getEnv("REMINDER_INTERVAL", "6h")
	d, err := time.ParseDuration(interval)
	if err != nil {
		return nil, fmt.Errorf("config: REMINDER_INTERVAL inválido (%q): %w", interval, err)
	}
	cfg.ReminderInterval = d

	creds, err := parseCredentials(os.Getenv("STAFF_CREDENTIALS"))
	if err != nil {
		return nil, err
	}
	cfg.Credentials = creds

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate aplica todas las reglas sobre la configuración cargada.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valor por defecto útil en local cuando DATABASE_URL no está definida.
		c.DatabaseURL = "postgres://localhost:5432/venueadmin?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL inválida (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL inválida (%q): falta scheme o host", c.DatabaseURL)
	}

	if len(c.Credentials) == 0 {
		return fmt.Errorf("config: STAFF_CREDENTIALS es requerido (formato email:password:rol,...)")
	}

	return nil
}

// parseCredentials reads "email:password:role" triplets separated by commas.
func parseCredentials(raw string) ([]auth.Credential, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out []auth.Credential
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("config: credencial inválida %q (formato email:password:rol)", entry)
		}
		role := domain.Role(parts[2])
		switch role {
		case domain.RoleAdmin, domain.RoleSubadmin, domain.RoleUser:
		default:
			return nil, fmt.Errorf("config: rol desconocido %q (admin, subadmin o user)", parts[2])
		}
		out = append(out, auth.Credential{
			Email:    parts[0],
			Password: parts[1],
			Role:     role,
		})
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
