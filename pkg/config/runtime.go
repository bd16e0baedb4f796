package config

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/spf13/viper"
)

// Runtime guarda la API base del CRM ajustable en caliente.
// El valor sobrescrito se persiste en un archivo YAML propio para sobrevivir
// reinicios del panel; si no existe override se usa el valor de configuración.
type Runtime struct {
	mu      sync.RWMutex
	v       *viper.Viper
	path    string
	apiBase string
}

// NewRuntime crea el estado de configuración en caliente. Lee el override
// persistido si existe; def es la API base de la configuración estática.
func NewRuntime(path, def string) *Runtime {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	r := &Runtime{v: v, path: path, apiBase: def}
	if err := v.ReadInConfig(); err == nil {
		if u := v.GetString("api_url"); u != "" {
			r.apiBase = u
		}
	}
	return r
}

// APIBase devuelve la URL base actual del backend del CRM.
func (r *Runtime) APIBase() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.apiBase
}

// SetAPIBase valida y cambia la URL base, persistiéndola para próximos arranques.
func (r *Runtime) SetAPIBase(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("url de API inválida: %q", raw)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.apiBase = raw
	r.v.Set("api_url", raw)
	if err := r.v.WriteConfigAs(r.path); err != nil {
		return fmt.Errorf("persistiendo api_url: %w", err)
	}
	return nil
}
