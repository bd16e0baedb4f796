// Package token decodifica el payload del token emitido por el backend del CRM
// y normaliza el rol a los roles de la aplicación. En esta capa el backend es
// de confianza: NO se verifica la firma (la verificación ocurre en el backend
// que emite el token; el panel solo lo transporta).
package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/crm-panel/internal/domain/entity"
)

// Claims payload del token con solo los campos que el panel consume.
// El payload real puede traer campos extra; se ignoran.
type Claims struct {
	Subject string // claim "sub"
	ID      string // claim "id" (string o número, se normaliza a string)
	Email   string
	Name    string
	RawRole string // rol crudo del backend, ej. "ROLE_SUPERVISOR"
	Exp     int64  // expiración unix, 0 si no viene
}

// Decode parsea el payload del token sin verificar firma.
// Retorna error si el token no es JWT bien formado o el payload no es JSON.
func Decode(raw string) (*Claims, error) {
	parser := jwt.NewParser()
	tok, _, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("decodificando token: %w", err)
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("payload del token no es un objeto JSON")
	}

	c := &Claims{
		Subject: asString(mc["sub"]),
		ID:      asString(mc["id"]),
		Email:   asString(mc["email"]),
		Name:    asString(mc["name"]),
		RawRole: asString(mc["role"]),
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.Exp = exp.Unix()
	}
	return c, nil
}

// MapRole normaliza el rol crudo del backend: quita el prefijo convencional
// ROLE_, pasa a minúsculas y clasifica por substring en orden de prioridad.
// Un rol no reconocido cae a RoleUser: autenticado con privilegio mínimo.
// Ese fallback es deliberado y debe conservarse.
func MapRole(raw string) entity.Role {
	normalized := raw
	if len(normalized) >= 5 && strings.EqualFold(normalized[:5], "ROLE_") {
		normalized = normalized[5:]
	}
	normalized = strings.ToLower(normalized)

	switch {
	case strings.Contains(normalized, "superadmin"):
		return entity.RoleSuperadmin
	case strings.Contains(normalized, "admin"):
		return entity.RoleAdmin
	case strings.Contains(normalized, "user"),
		strings.Contains(normalized, "agent"), // cubre "agente"
		strings.Contains(normalized, "supervisor"):
		return entity.RoleUser
	}
	return entity.RoleUser
}

// UserFromClaims deriva el usuario de aplicación desde los claims:
// id toma "id" y cae a "sub"; name cae al email si no viene;
// el rol ausente se trata como "agente" (privilegio mínimo autenticado).
func UserFromClaims(c *Claims) *entity.User {
	id := c.ID
	if id == "" {
		id = c.Subject
	}
	name := c.Name
	if name == "" {
		name = c.Email
	}
	rawRole := c.RawRole
	if rawRole == "" {
		rawRole = "agente"
	}
	return &entity.User{
		ID:    id,
		Email: c.Email,
		Name:  name,
		Role:  MapRole(rawRole),
	}
}

// asString normaliza valores del payload: el claim "id" puede llegar como
// string o como número JSON.
func asString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprintf("%v", t)
	}
}
