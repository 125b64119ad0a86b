package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Cdo9608/sistema-consumibles/internal/config"
	"github.com/Cdo9608/sistema-consumibles/internal/dto"
	"github.com/Cdo9608/sistema-consumibles/internal/middleware"
	"github.com/Cdo9608/sistema-consumibles/internal/model"
	"github.com/Cdo9608/sistema-consumibles/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// stubMovimientos records what the handler hands to the service layer.
type stubMovimientos struct {
	ultimoUsuario string
}

func (s *stubMovimientos) CrearEntrada(_ context.Context, _ dto.CrearEntradaRequest, usuario string) (*dto.MovimientoResponse, error) {
	s.ultimoUsuario = usuario
	return &dto.MovimientoResponse{ID: 1, Sincronizado: true}, nil
}

func (s *stubMovimientos) CrearSalida(_ context.Context, _ dto.CrearSalidaRequest, usuario string) (*dto.MovimientoResponse, error) {
	s.ultimoUsuario = usuario
	return &dto.MovimientoResponse{ID: 1, Sincronizado: true}, nil
}

func (s *stubMovimientos) EliminarEntrada(_ context.Context, _ uint) (*dto.MovimientoResponse, error) {
	return &dto.MovimientoResponse{Sincronizado: true}, nil
}

func (s *stubMovimientos) EliminarSalida(_ context.Context, _ uint) (*dto.MovimientoResponse, error) {
	return &dto.MovimientoResponse{Sincronizado: true}, nil
}

func (s *stubMovimientos) ListarEntradas(_ context.Context) ([]model.Entrada, error) {
	return []model.Entrada{{ID: 1, OrdenCompra: "OC-1"}}, nil
}

func (s *stubMovimientos) ListarSalidas(_ context.Context) ([]model.Salida, error) {
	return nil, nil
}

func appDePrueba(t *testing.T) (*gin.Engine, *stubMovimientos, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("clave123"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 1,
		AdminUser:          "Usuario",
		AdminPasswordHash:  string(hash),
	}

	movs := &stubMovimientos{}
	authH := NewAuthHandler(service.NewAuthService(cfg))
	entradasH := NewEntradasHandler(movs)

	r := gin.New()
	r.POST("/v1/auth/login", authH.Login)
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	v1.POST("/entradas", entradasH.Registrar)
	v1.GET("/entradas", entradasH.Listar)
	v1.DELETE("/entradas/:id", entradasH.Eliminar)

	// Obtain a real token through the login endpoint.
	body, _ := json.Marshal(dto.LoginRequest{Username: "Usuario", Password: "clave123"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	return r, movs, login.AccessToken
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	r, _, _ := appDePrueba(t)

	body, _ := json.Marshal(dto.LoginRequest{Username: "Usuario", Password: "incorrecta"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestEntradas_SinToken(t *testing.T) {
	r, _, _ := appDePrueba(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/entradas", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEntradas_RegistrarConToken(t *testing.T) {
	r, movs, token := appDePrueba(t)

	body, _ := json.Marshal(dto.CrearEntradaRequest{
		OrdenCompra: "OC-1",
		Fecha:       "10/01/2026",
		Codigo:      "CON-001",
		Cantidad:    decimal.NewFromInt(5),
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/entradas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Usuario", movs.ultimoUsuario, "creado_por sale del token")
}

func TestEntradas_ValidacionFaltante(t *testing.T) {
	r, _, token := appDePrueba(t)

	// Missing required fields and non-positive cantidad.
	body := []byte(`{"orden_compra":"OC-1","cantidad":0}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/entradas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "fields")
}

func TestEntradas_IDInvalido(t *testing.T) {
	r, _, token := appDePrueba(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/entradas/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEntradas_TokenInvalido(t *testing.T) {
	r, _, _ := appDePrueba(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/entradas", nil)
	req.Header.Set("Authorization", "Bearer no-es-un-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
