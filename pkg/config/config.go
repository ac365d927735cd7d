package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	DB      DBConfig
	Redis   RedisConfig
	Backup  BackupConfig
	Desktop DesktopConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor de la API.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas
	DocsPath    string // swagger.json; si no existe no se monta /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig selecciona dónde vive el blob con la colección de productos.
type StorageConfig struct {
	Driver string // file, memory, postgres, redis
	Key    string // clave única del blob
	Dir    string // directorio para el driver file
}

// DBConfig configuración de PostgreSQL (driver postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
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

// RedisConfig configuración del driver redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// BackupConfig almacenamiento de objetos compatible con S3 para copias de seguridad.
// Endpoint vacío = copias deshabilitadas.
type BackupConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled indica si hay un destino de copias configurado.
func (c BackupConfig) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

// DesktopConfig configuración del shell de escritorio (servidor de archivos estáticos).
type DesktopConfig struct {
	Host        string
	Port        int
	AssetsDir   string
	APIURL      string // si no está vacío, /api/* se redirige a la API
	OpenBrowser bool
}

// Addr devuelve la dirección de escucha del shell.
func (c DesktopConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// URL devuelve la URL local que se abre en el navegador.
func (c DesktopConfig) URL() string {
	host := c.Host
	if host == "" || host == "0.0.0.0" || host == "127.0.0.1" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
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
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ancla-y-sedal"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "127.0.0.1"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			CORSOrigins: getString(v, "HTTP_CORS_ORIGINS", "http://localhost:3000"),
			DocsPath:    getString(v, "HTTP_DOCS_PATH", "./docs/swagger.json"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString(v, "STORAGE_DRIVER", "file")),
			Key:    getString(v, "STORAGE_KEY", "fishing_stock"),
			Dir:    getString(v, "STORAGE_DIR", "./data"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "stock_pesca"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Backup: BackupConfig{
			Endpoint:  getString(v, "BACKUP_ENDPOINT", ""),
			AccessKey: getString(v, "BACKUP_ACCESS_KEY", ""),
			SecretKey: getString(v, "BACKUP_SECRET_KEY", ""),
			Bucket:    getString(v, "BACKUP_BUCKET", "stock-pesca"),
			UseSSL:    getBool(v, "BACKUP_USE_SSL", false),
		},
		Desktop: DesktopConfig{
			Host:        getString(v, "DESKTOP_HOST", "127.0.0.1"),
			Port:        getInt(v, "DESKTOP_PORT", 3000),
			AssetsDir:   getString(v, "DESKTOP_ASSETS_DIR", "./dist"),
			APIURL:      getString(v, "DESKTOP_API_URL", "http://127.0.0.1:8080"),
			OpenBrowser: getBool(v, "DESKTOP_OPEN_BROWSER", true),
		},
	}

	switch cfg.Storage.Driver {
	case "file", "memory", "postgres", "redis":
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Key == "" {
		return nil, fmt.Errorf("STORAGE_KEY no puede estar vacío")
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		if b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key))); err == nil {
			return b
		}
	}
	return def
}
