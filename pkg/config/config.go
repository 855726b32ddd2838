package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración del agente (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Store  StoreConfig
	Remote RemoteConfig
	Sync   SyncConfig
	HTTP   HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	DeviceID string
}

// StoreConfig base SQLite local del dispositivo.
type StoreConfig struct {
	Path          string
	BusyTimeoutMS int
}

// RemoteConfig servidor WMS. BaseURL vacío activa el modo demo con datos de ejemplo en memoria.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration

	DemoSecret      string // firma de los tokens del servidor demo
	DemoCatalogPath string // XML de catálogo opcional para el servidor demo
}

// Demo indica si no hay servidor configurado.
func (c RemoteConfig) Demo() bool { return strings.TrimSpace(c.BaseURL) == "" }

// SyncConfig política de envío de registros pendientes.
type SyncConfig struct {
	Interval    time.Duration
	MaxAttempts int // al llegar aquí el registro se reporta como detenido (sigue en cola)
	BackoffBase time.Duration
	BackoffMax  time.Duration
}

// HTTPConfig API local que consume la interfaz de usuario.
type HTTPConfig struct {
	Host string
	Port int
	// DocsFile swagger.json servido en /docs; vacío desactiva la documentación.
	DocsFile string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Un .env en el directorio de trabajo se carga primero si existe.
func Load() (*Config, error) {
	_ = godotenv.Load() // ignoramos error si no existe

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "wms-sync-agent"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			DeviceID: getString(v, "DEVICE_ID", ""),
		},
		Store: StoreConfig{
			Path:          getString(v, "STORE_PATH", "./data/wms.db"),
			BusyTimeoutMS: getInt(v, "STORE_BUSY_TIMEOUT_MS", 5000),
		},
		Remote: RemoteConfig{
			BaseURL: strings.TrimRight(getString(v, "REMOTE_BASE_URL", ""), "/"),
			Timeout: seconds(getInt(v, "REMOTE_TIMEOUT_SECONDS", 15)),

			DemoSecret:      getString(v, "DEMO_JWT_SECRET", "wms-demo-secret"),
			DemoCatalogPath: getString(v, "DEMO_CATALOG_PATH", ""),
		},
		Sync: SyncConfig{
			Interval:    seconds(getInt(v, "SYNC_INTERVAL_SECONDS", 30)),
			MaxAttempts: getInt(v, "SYNC_MAX_ATTEMPTS", 8),
			BackoffBase: seconds(getInt(v, "SYNC_BACKOFF_BASE_SECONDS", 15)),
			BackoffMax:  seconds(getInt(v, "SYNC_BACKOFF_MAX_SECONDS", 3600)),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8088),

			DocsFile: getString(v, "HTTP_DOCS_FILE", "./docs/swagger.json"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("config: STORE_PATH vacío")
	}
	if c.Sync.Interval <= 0 {
		return fmt.Errorf("config: SYNC_INTERVAL_SECONDS debe ser positivo")
	}
	if c.Sync.MaxAttempts <= 0 {
		return fmt.Errorf("config: SYNC_MAX_ATTEMPTS debe ser positivo")
	}
	if c.Sync.BackoffBase <= 0 || c.Sync.BackoffMax < c.Sync.BackoffBase {
		return fmt.Errorf("config: backoff inválido (base %s, máximo %s)", c.Sync.BackoffBase, c.Sync.BackoffMax)
	}
	return nil
}

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }

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
