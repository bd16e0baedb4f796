// Package crm implementa el cliente HTTP hacia el backend externo del CRM.
// El panel nunca emite tokens ni persiste datos de negocio: todo lo que no es
// mock se delega aquí, adjuntando el bearer token de la sesión.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jhoicas/crm-panel/internal/application/dto"
	"github.com/jhoicas/crm-panel/internal/domain"
)

// Client cliente de la API REST del CRM. La URL base se resuelve en cada
// llamada para respetar cambios en caliente desde configuración.
type Client struct {
	base  func() string
	httpc *http.Client
}

// NewClient construye el cliente. base devuelve la URL base vigente
// (ej. http://localhost:8080).
func NewClient(base func() string) *Client {
	return &Client{
		base:  base,
		httpc: &http.Client{},
	}
}

// loginBody respuesta del endpoint de login. El backend puede entregar el
// token bajo "token" o "access_token"; se prueban en ese orden.
type loginBody struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

// Login envía credenciales a POST {base}/auth/login y devuelve el token emitido.
//
//   - Estado no exitoso: *domain.AuthError con el message del cuerpo si viene,
//     "Error de autenticación" por defecto, y "Credenciales inválidas" para 401
//     (el override por código tiene prioridad sobre el message del cuerpo).
//   - 2xx sin campo token: domain.ErrTokenNoRecibido.
//   - Fallo de red: error de conectividad genérico, sin reintentos.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base()+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("conectando con el servidor: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := "Error de autenticación"
		var body loginBody
		if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
			message = body.Message
		}
		if resp.StatusCode == http.StatusUnauthorized {
			message = "Credenciales inválidas"
		}
		return "", &domain.AuthError{Status: resp.StatusCode, Message: message}
	}

	var body loginBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", domain.ErrTokenNoRecibido
	}
	token := body.Token
	if token == "" {
		token = body.AccessToken
	}
	if token == "" {
		return "", domain.ErrTokenNoRecibido
	}
	return token, nil
}

// Leads lista los leads del CRM.
func (c *Client) Leads(ctx context.Context, token string) ([]dto.Lead, error) {
	var out []dto.Lead
	if err := c.do(ctx, http.MethodGet, "/leads", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Users lista los usuarios del CRM.
func (c *Client) Users(ctx context.Context, token string) ([]dto.PanelUser, error) {
	var out []dto.PanelUser
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser da de alta un usuario en el CRM.
func (c *Client) CreateUser(ctx context.Context, token string, in dto.CreateUserRequest) (*dto.PanelUser, error) {
	var out dto.PanelUser
	if err := c.do(ctx, http.MethodPost, "/users", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser edita un usuario del CRM.
func (c *Client) UpdateUser(ctx context.Context, token, id string, in dto.UpdateUserRequest) (*dto.PanelUser, error) {
	var out dto.PanelUser
	if err := c.do(ctx, http.MethodPut, "/users/"+id, token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser elimina un usuario del CRM.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, token, nil, nil)
}

// do ejecuta una llamada autenticada contra la API del CRM.
// Adjunta "Authorization: Bearer <token>" si hay token. Un 401 del CRM se
// traduce a domain.ErrSesionExpirada: el token dejó de ser válido y la capa
// HTTP debe limpiar la sesión y redirigir al login.
func (c *Client) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base()+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("conectando con el servidor: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrSesionExpirada
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		raw, _ := io.ReadAll(resp.Body)
		var er dto.ErrorResponse
		if err := json.Unmarshal(raw, &er); err == nil && er.Message != "" {
			return fmt.Errorf("API del CRM respondió %d: %s", resp.StatusCode, er.Message)
		}
		return fmt.Errorf("API del CRM respondió %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
