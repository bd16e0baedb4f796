package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del panel (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	CRM    CRMConfig
	Cookie CookieConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP del panel.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CRMConfig configuración del backend externo del CRM.
// APIBase es el valor inicial; puede sobrescribirse en caliente vía Runtime.
type CRMConfig struct {
	APIBase      string // ej. http://localhost:8080
	OverridePath string // archivo donde persiste la API base cambiada en caliente
}

// CookieConfig configuración de la cookie de sesión del panel.
type CookieConfig struct {
	Name         string
	Domain       string
	Secure       bool
	RememberDays int // duración de la cookie persistente ("mantener sesión iniciada")
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, CRM_API_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "crm-panel"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8081),
		},
		CRM: CRMConfig{
			APIBase:      getString(v, "CRM_API_URL", "http://localhost:8080"),
			OverridePath: getString(v, "CRM_API_OVERRIDE_PATH", "panel_api.yaml"),
		},
		Cookie: CookieConfig{
			Name:         getString(v, "SESSION_COOKIE_NAME", "auth_token"),
			Domain:       getString(v, "SESSION_COOKIE_DOMAIN", ""),
			Secure:       getString(v, "SESSION_COOKIE_SECURE", "false") == "true",
			RememberDays: getInt(v, "SESSION_REMEMBER_DAYS", 30),
		},
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
