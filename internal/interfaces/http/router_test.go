package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Inventario-dashboard/internal/interfaces/http"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type stubReport struct{}

func (stubReport) GenerateInventoryReport(context.Context, *dto.DashboardResponse, time.Time) ([]byte, error) {
	return []byte("%PDF-1.3 test"), nil
}

type testServer struct {
	app   *fiber.App
	store *memory.Store
	hwID  int64
	bolt  int64
}

// newServer levanta el router completo sobre un almacén en memoria con
// Hardware{Bolt 10×0.25} y Glue 2×4.50 sin categoría.
func newServer(t *testing.T, jwtSecret string) testServer {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	hw := store.AddCategory("Hardware")
	bolt := &entity.Product{Name: "Bolt", Quantity: 10, UnitPrice: decimal.RequireFromString("0.25"), CategoryID: &hw}
	require.NoError(t, store.Products().Create(ctx, bolt))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{Name: "Glue", Quantity: 2, UnitPrice: decimal.RequireFromString("4.50")}))

	log := logger.Nop()
	cache := memory.NewCache()
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:      usecase.NewProductUseCase(store.Products(), store.Categories(), cache, log),
		CategoryUC:     usecase.NewCategoryUseCase(store.Categories()),
		AdjustQuantity: inventory.NewAdjustQuantityUseCase(store, cache, log),
		DashboardUC:    appanalytics.NewDashboardUseCase(store.Categories(), store.Products(), cache, stubReport{}, log),
		AuthUC: auth.NewAuthUseCase(map[string]string{testOperator: hash},
			auth.JWTConfig{Secret: jwtSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		Health:       func(context.Context) error { return nil },
		ServiceName:  "inventario-dashboard-test",
		JWTSecret:    jwtSecret,
		StoreTimeout: time.Second,
		Logger:       log,
	})
	return testServer{app: app, store: store, hwID: hw, bolt: bolt.ID}
}

func (s testServer) do(t *testing.T, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	s := newServer(t, "")
	resp := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID), "cada respuesta lleva X-Request-ID")

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestCategories_List(t *testing.T) {
	s := newServer(t, "")
	resp := s.do(t, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.CategoryListResponse](t, resp)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Hardware", body.Items[0].Name)
}

func TestDashboard_Get(t *testing.T) {
	s := newServer(t, "")
	resp := s.do(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.DashboardResponse](t, resp)
	assert.True(t, decimal.RequireFromString("11.50").Equal(body.TotalValue), "2.50 + 9.00")
	assert.Equal(t, 2, body.ItemCount)
	assert.Equal(t, 1, body.LowStockCount)
	assert.False(t, body.Degraded)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Uncategorized", body.Items[1].CategoryName)
	assert.True(t, body.Items[1].LowStock)
}

func TestDashboard_Get_Filtros(t *testing.T) {
	s := newServer(t, "")

	resp := s.do(t, http.MethodGet, "/api/dashboard?q=BOL", nil)
	body := decodeBody[dto.DashboardResponse](t, resp)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Bolt", body.Items[0].Name)

	resp = s.do(t, http.MethodGet, "/api/dashboard?category=Hardware&category=Uncategorized", nil)
	body = decodeBody[dto.DashboardResponse](t, resp)
	assert.Len(t, body.Items, 2, "category repetido: unión de categorías")

	resp = s.do(t, http.MethodGet, "/api/dashboard?q=glue&category=Hardware", nil)
	body = decodeBody[dto.DashboardResponse](t, resp)
	assert.Empty(t, body.Items, "nombre AND categoría")
	assert.Equal(t, 2, body.ItemCount, "los agregados no dependen de los filtros")
}

func TestDashboard_Get_AlmacenCaidoDevuelveVistaDegradada(t *testing.T) {
	s := newServer(t, "")
	s.store.FailWith(errors.New("dial tcp 10.0.0.7:5432: connect: connection refused"))

	resp := s.do(t, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body := decodeBody[dto.DashboardResponse](t, resp)
	assert.True(t, body.Degraded)
	assert.NotEmpty(t, body.Message, "el usuario ve un mensaje")
	assert.NotContains(t, body.Message, "10.0.0.7", "los detalles de conexión solo van al log")
	assert.NotContains(t, body.Message, "dial tcp")
	assert.Empty(t, body.Items)
	assert.True(t, body.TotalValue.IsZero())
}

func TestDashboard_Report(t *testing.T) {
	s := newServer(t, "")
	resp := s.do(t, http.MethodGet, "/api/dashboard/report.pdf", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "inventario-")
}

func TestProducts_GetByID(t *testing.T) {
	s := newServer(t, "")

	resp := s.do(t, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escritura
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_Create(t *testing.T) {
	s := newServer(t, "")

	resp := s.do(t, http.MethodPost, "/api/products", map[string]any{
		"name": "Nail", "quantity": 100, "unit_price": "0.05", "category_id": s.hwID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.ProductResponse](t, resp)
	assert.Equal(t, "Hardware", created.CategoryName)

	// La siguiente lectura del tablero ya incluye el producto (caché invalidada).
	resp = s.do(t, http.MethodGet, "/api/dashboard", nil)
	body := decodeBody[dto.DashboardResponse](t, resp)
	assert.Equal(t, 3, body.ItemCount)
}

func TestProducts_Create_Validacion(t *testing.T) {
	s := newServer(t, "")

	resp := s.do(t, http.MethodPost, "/api/products", map[string]any{"name": "Bad", "quantity": -1, "unit_price": "1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)

	resp = s.do(t, http.MethodPost, "/api/products", map[string]any{"name": "Orphan", "unit_price": "1", "category_id": 404})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "categoría inexistente")
}

func TestProducts_IncrementDecrement(t *testing.T) {
	s := newServer(t, "")
	path := func(action string) string { return "/api/products/" + itoa(s.bolt) + "/" + action }

	resp := s.do(t, http.MethodPost, path("increment"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 11, decodeBody[dto.ProductResponse](t, resp).Quantity)

	resp = s.do(t, http.MethodPost, path("decrement"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, decodeBody[dto.ProductResponse](t, resp).Quantity)

	resp = s.do(t, http.MethodPatch, path("quantity"), map[string]int{"delta": -50})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decodeBody[dto.ProductResponse](t, resp).Quantity, "nunca baja de cero")

	resp = s.do(t, http.MethodPost, "/api/products/999/increment", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducts_Update(t *testing.T) {
	s := newServer(t, "")

	resp := s.do(t, http.MethodPut, "/api/products/"+itoa(s.bolt), map[string]any{"unit_price": "0.30"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.ProductResponse](t, resp)
	assert.True(t, decimal.RequireFromString("0.30").Equal(out.UnitPrice))
	assert.Equal(t, "Hardware", out.CategoryName, "la categoría no cambia si no se envía")
}

func TestProducts_Delete(t *testing.T) {
	s := newServer(t, "")

	resp := s.do(t, http.MethodDelete, "/api/products/"+itoa(s.bolt), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, "/api/products/"+itoa(s.bolt), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "el segundo borrado es 404")
}

func TestProducts_DeleteIdInexistenteNoTocaLosDemas(t *testing.T) {
	s := newServer(t, "")

	resp := s.do(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	before := decodeBody[dto.DashboardResponse](t, resp)

	resp = s.do(t, http.MethodDelete, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody[dto.ErrorResponse](t, resp).Code)

	resp = s.do(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	after := decodeBody[dto.DashboardResponse](t, resp)

	assert.Equal(t, before.TotalValue.String(), after.TotalValue.String())
	assert.Equal(t, before.TotalUnits, after.TotalUnits)
	assert.Equal(t, before.ItemCount, after.ItemCount)
	assert.Equal(t, before.LowStockCount, after.LowStockCount)
	require.Len(t, after.Items, len(before.Items))
	for i := range before.Items {
		assert.Equal(t, before.Items[i].ID, after.Items[i].ID)
		assert.Equal(t, before.Items[i].Name, after.Items[i].Name)
		assert.Equal(t, before.Items[i].Quantity, after.Items[i].Quantity)
		assert.Equal(t, before.Items[i].UnitPrice.String(), after.Items[i].UnitPrice.String())
	}
}

func TestProducts_DeltaFueraDeRango(t *testing.T) {
	s := newServer(t, "")
	path := "/api/products/" + itoa(s.bolt) + "/quantity"

	resp := s.do(t, http.MethodPatch, path, map[string]int64{"delta": math.MaxInt64})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/products/"+itoa(s.bolt), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, decodeBody[dto.ProductResponse](t, resp).Quantity, "la cantidad no se pierde")
}

func TestProducts_AlmacenCaido_Retorna503(t *testing.T) {
	s := newServer(t, "")
	s.store.FailWith(errors.New("dial tcp 10.0.0.7:5432: i/o timeout"))

	resp := s.do(t, http.MethodPost, "/api/products", map[string]any{"name": "X", "unit_price": "1"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "STORE_UNAVAILABLE", body.Code)
	assert.NotContains(t, body.Message, "10.0.0.7")
}

// ──────────────────────────────────────────────────────────────────────────────
// Protección de escrituras
// ──────────────────────────────────────────────────────────────────────────────

func TestEscrituras_ConSecretExigenToken(t *testing.T) {
	s := newServer(t, testJWTSecret)

	resp := s.do(t, http.MethodPost, "/api/products/"+itoa(s.bolt)+"/increment", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/products/"+itoa(s.bolt)+"/increment", nil, "Authorization", bearer(t))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/products/"+itoa(s.bolt), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "las lecturas siguen siendo públicas")

	resp = s.do(t, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func TestAuthLogin_TokenSirveParaEscribir(t *testing.T) {
	s := newServer(t, testJWTSecret)

	resp := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"operator": testOperator, "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"operator": testOperator, "password": "correct horse"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decodeBody[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)

	resp = s.do(t, http.MethodPost, "/api/products/"+itoa(s.bolt)+"/decrement", nil, "Authorization", "Bearer "+login.Token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthLogin_SinSecretNoSeRegistra(t *testing.T) {
	s := newServer(t, "")
	resp := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"operator": testOperator, "password": "correct horse"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
