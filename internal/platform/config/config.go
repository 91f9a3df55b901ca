package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPort            = "8080"
	defaultAppName         = "petcare-landing"
	defaultContentTimeout  = 10 * time.Second
	defaultContentCacheTTL = 5 * time.Minute
	defaultAuthDelay       = time.Second
)

// Config sale de variables de entorno (opcionalmente de un .env).
// Los nombres de las keys son las env vars en minúscula.
type Config struct {
	Port      string `koanf:"port"`
	AppName   string `koanf:"app_name"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// Si viene, los slots se guardan en Postgres. Si no, in-memory.
	DBDSN string `koanf:"db_dsn"`

	// Fuente remota de contenido; sin ambas => contenido de fallback.
	SupabaseURL     string `koanf:"supabase_url"`
	SupabaseAnonKey string `koanf:"supabase_anon_key"`

	ContentTimeout  time.Duration `koanf:"content_timeout"`
	ContentCacheTTL time.Duration `koanf:"content_cache_ttl"`

	// Latencia simulada del login stub.
	AuthDelay time.Duration `koanf:"auth_delay"`

	// Verificador real de credenciales (opcional).
	OdinBaseURL string `koanf:"odin_base_url"`
	OdinAPIKey  string `koanf:"odin_api_key"`
}

// Load lee el entorno. dotenvFiles son opcionales: si no existen se ignoran.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) > 0 {
		if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(err, "load .env")
		}
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value)
		},
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, "load env variables failed")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config failed")
	}

	cfg.applyDefaults(k)
	return cfg, nil
}

func (c *Config) applyDefaults(k *koanf.Koanf) {
	if strings.TrimSpace(c.Port) == "" {
		c.Port = defaultPort
	}
	if strings.TrimSpace(c.AppName) == "" {
		c.AppName = defaultAppName
	}
	// Duraciones: "0" es válido (desactiva), solo aplicamos default si no vino.
	if !k.Exists("content_timeout") {
		c.ContentTimeout = defaultContentTimeout
	}
	if !k.Exists("content_cache_ttl") {
		c.ContentCacheTTL = defaultContentCacheTTL
	}
	if !k.Exists("auth_delay") {
		c.AuthDelay = defaultAuthDelay
	}
}

// Addr devuelve la dirección de escucha del server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// SupabaseConfigured indica si hay fuente remota de contenido.
func (c Config) SupabaseConfigured() bool {
	return strings.TrimSpace(c.SupabaseURL) != "" && strings.TrimSpace(c.SupabaseAnonKey) != ""
}

// OdinConfigured indica si hay verificador real de credenciales.
func (c Config) OdinConfigured() bool {
	return strings.TrimSpace(c.OdinBaseURL) != "" && strings.TrimSpace(c.OdinAPIKey) != ""
}
