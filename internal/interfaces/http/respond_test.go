package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	"github.com/jhoicas/cafe-stock-api/internal/domain"
)

// appForError monta una ruta que responde el error dado con el mapeador indicado.
func appForError(mapper func(*fiber.Ctx, error) error, err error) *fiber.App {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return mapper(c, err)
	})
	return app
}

func getEnvelope(t *testing.T, app *fiber.App) (int, dto.Envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env dto.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// En las rutas de stock el producto inexistente es un 400 (es un dato del body,
// no un recurso de la URL) mientras que en las rutas CRUD es un 404.
func TestStockError_NotFoundEs400(t *testing.T) {
	status, env := getEnvelope(t, appForError(respondStockError, domain.ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "producto no encontrado", env.Message)
}

func TestDomainError_NotFoundEs404(t *testing.T) {
	status, env := getEnvelope(t, appForError(respondDomainError, domain.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
}

func TestStockError_StockInsuficienteConDetalle(t *testing.T) {
	err := &domain.InsufficientStockError{Available: 5, Requested: 10}
	status, env := getEnvelope(t, appForError(respondStockError, err))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Message, "Disponible: 5")
	assert.Contains(t, env.Message, "Solicitado: 10")
}

func TestStockError_ConflictoEs409(t *testing.T) {
	status, _ := getEnvelope(t, appForError(respondStockError, domain.ErrConflict))
	assert.Equal(t, http.StatusConflict, status)
}

func TestStockError_InesperadoEs500(t *testing.T) {
	status, _ := getEnvelope(t, appForError(respondStockError, errors.New("se cayó la base")))
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestDomainError_DuplicadoEs409(t *testing.T) {
	status, _ := getEnvelope(t, appForError(respondDomainError, domain.ErrDuplicate))
	assert.Equal(t, http.StatusConflict, status)
}

func TestDomainError_InvalidEs400(t *testing.T) {
	status, _ := getEnvelope(t, appForError(respondDomainError, domain.ErrInvalidInput))
	assert.Equal(t, http.StatusBadRequest, status)
}
