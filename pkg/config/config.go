package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App          AppConfig
	DB           DBConfig
	ParserTarget ParserTargetConfig
	Log          LogConfig
	JWT          JWTConfig
	HTTP         HTTPConfig
	AI           AIConfig
	Browser      BrowserConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env   string // development, staging, production
	Name  string
	OrgID string // organización por defecto cuando el token no trae org_id
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL    string
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MaxConns       int
	ConnectRetries int
	RetryDelay     time.Duration
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// ParserTargetConfig datos de conexión que se escriben en el blob config de cada parser.
// El servicio de parsing los usa para volcar los campos extraídos en la tabla destino.
type ParserTargetConfig struct {
	SQL      string // dialecto: postgresql, mysql...
	Host     string
	Port     int
	DBName   string
	User     string
	Password string
}

// JDBCURL arma la URL JDBC que espera el parser (jdbc:<sql>://host:port/db).
func (c ParserTargetConfig) JDBCURL() string {
	return fmt.Sprintf("jdbc:%s://%s:%d/%s", c.SQL, c.Host, c.Port, c.DBName)
}

// LogConfig configuración de logging.
type LogConfig struct {
	Level string
	File  string // vacío = solo stdout
}

// JWTConfig configuración de JWT. Secret vacío desactiva la autenticación.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Enabled indica si las rutas deben exigir Bearer token.
func (c JWTConfig) Enabled() bool { return c.Secret != "" }

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	AllowOrigins string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AIConfig proveedor LLM usado por el playground de extracción.
type AIConfig struct {
	Provider        string // anthropic | gemini
	AnthropicAPIKey string
	AnthropicModel  string
	GeminiAPIKey    string
	GeminiModel     string
	Timeout         time.Duration
	MaxConcurrency  int
}

// BrowserConfig configuración del explorador genérico de tablas.
type BrowserConfig struct {
	AllowedTables []string
}

const defaultAllowedTables = "parser_config,llm_parser_prompt,llm_template_list,browser_automation_prompt"

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, DB_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	db := DBConfig{
		DatabaseURL:    getString(v, "DATABASE_URL", ""),
		Host:           getString(v, "DB_HOST", "localhost"),
		Port:           getInt(v, "DB_PORT", 5432),
		User:           getString(v, "DB_USER", "postgres"),
		Password:       getString(v, "DB_PASSWORD", ""),
		DBName:         getString(v, "DB_NAME", "llm_parser"),
		SSLMode:        getString(v, "DB_SSLMODE", "disable"),
		MaxConns:       getInt(v, "DB_MAX_CONNS", 10),
		ConnectRetries: getInt(v, "DB_CONNECT_RETRIES", 5),
		RetryDelay:     time.Duration(getInt(v, "DB_CONNECT_RETRY_DELAY_SECONDS", 5)) * time.Second,
	}

	cfg := &Config{
		App: AppConfig{
			Env:   getString(v, "APP_ENV", "development"),
			Name:  getString(v, "APP_NAME", "parser-config-api"),
			OrgID: strings.TrimSpace(getString(v, "ORG_ID", "")),
		},
		DB: db,
		// Por defecto el parser escribe en la misma base que administra esta API.
		ParserTarget: ParserTargetConfig{
			SQL:      getString(v, "PARSER_CONFIG_SQL", "postgresql"),
			Host:     getString(v, "PARSER_CONFIG_DB_HOST", db.Host),
			Port:     getInt(v, "PARSER_CONFIG_DB_PORT", db.Port),
			DBName:   getString(v, "PARSER_CONFIG_DB_NAME", db.DBName),
			User:     getString(v, "PARSER_CONFIG_DB_USER", db.User),
			Password: getString(v, "PARSER_CONFIG_DB_PASSWORD", db.Password),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", "logs/app.log"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "parser-config-api"),
		},
		HTTP: HTTPConfig{
			Host:         getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:         getInt(v, "HTTP_PORT", 5000),
			AllowOrigins: getString(v, "CORS_ALLOW_ORIGINS", "*"),
		},
		AI: AIConfig{
			Provider:        strings.ToLower(getString(v, "AI_PROVIDER", "anthropic")),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout:         time.Duration(getInt(v, "AI_TIMEOUT_SECONDS", 30)) * time.Second,
			MaxConcurrency:  getInt(v, "AI_MAX_CONCURRENCY", 4),
		},
		Browser: BrowserConfig{
			AllowedTables: splitList(getString(v, "TABLES_ALLOWLIST", defaultAllowedTables)),
		},
	}

	if cfg.DB.ConnectRetries < 1 {
		return nil, fmt.Errorf("config: DB_CONNECT_RETRIES debe ser >= 1")
	}
	if cfg.AI.MaxConcurrency < 1 {
		cfg.AI.MaxConcurrency = 1
	}
	if cfg.AI.Provider != "anthropic" && cfg.AI.Provider != "gemini" {
		return nil, fmt.Errorf("config: AI_PROVIDER desconocido %q", cfg.AI.Provider)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
