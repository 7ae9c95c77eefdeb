package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	JWT     JWTConfig
	Printer PrinterConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig configuración del snapshot store local.
// Backend: "file" (snapshot JSON, como el electron-store original) o "sqlite"
// (tabla clave-valor embebida).
type StorageConfig struct {
	Backend   string
	Path      string // archivo .json o .db según backend
	BackupDir string // destino de los backup pre-import
}

// JWTConfig configuración de las sesiones de operador.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// PrinterConfig valores iniciales de impresión cuando no hay snapshot previo.
type PrinterConfig struct {
	DefaultWidth  float64 // pulgadas
	DefaultHeight float64 // pulgadas
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, STORAGE_BACKEND, JWT_SECRET, etc.
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
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "sample-buddy-log"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Backend:   getString(v, "STORAGE_BACKEND", "file"),
			Path:      getString(v, "STORAGE_PATH", "data/sample-buddy.json"),
			BackupDir: getString(v, "STORAGE_BACKUP_DIR", "data/backups"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "sample-buddy-log"),
		},
		Printer: PrinterConfig{
			DefaultWidth:  getFloat(v, "PRINTER_DEFAULT_WIDTH", 4),
			DefaultHeight: getFloat(v, "PRINTER_DEFAULT_HEIGHT", 2),
		},
	}

	if cfg.Storage.Backend != "file" && cfg.Storage.Backend != "sqlite" {
		return nil, fmt.Errorf("config: STORAGE_BACKEND desconocido %q", cfg.Storage.Backend)
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		return v.GetFloat64(key)
	}
	return def
}
