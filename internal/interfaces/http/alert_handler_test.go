package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanchitKumbhar/Bynry-Task/internal/application/alerts"
	"github.com/SanchitKumbhar/Bynry-Task/internal/application/usecase"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/alerting"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
	apphttp "github.com/SanchitKumbhar/Bynry-Task/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixed-data fakes: one company, one warehouse, one under-stocked product
// with a recent sale and a supplier.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "00000000-0000-0000-0000-000000000001"
	testProductID = "00000000-0000-0000-0000-000000000002"
)

type fixedCompanyRepo struct{}

func (fixedCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if id != testCompanyID {
		return nil, nil
	}
	return &entity.Company{ID: testCompanyID, Name: "Acme Corp"}, nil
}

func (fixedCompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	return []*entity.Company{{ID: testCompanyID, Name: "Acme Corp"}}, nil
}

type fixedWarehouseRepo struct{}

func (fixedWarehouseRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Warehouse, error) {
	return []*entity.Warehouse{{ID: "wh-1", CompanyID: companyID, Name: "Main Warehouse"}}, nil
}

type fixedInventoryRepo struct{}

func (fixedInventoryRepo) ListByWarehouses(_ context.Context, _ []string) ([]*entity.Inventory, error) {
	return []*entity.Inventory{{ID: "inv-1", ProductID: testProductID, WarehouseID: "wh-1", Quantity: 5}}, nil
}

type fixedProductRepo struct{}

func (fixedProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return &entity.Product{ID: id, Name: "Widget A", SKU: "WID-001", ProductType: "normal"}, nil
}

type fixedSaleRepo struct{}

func (fixedSaleRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Sale, error) {
	return []*entity.Sale{
		{ID: "sale-1", ProductID: productID, Quantity: 10, OccurredAt: time.Now().UTC().AddDate(0, 0, -5)},
	}, nil
}

type fixedSupplierRepo struct{}

func (fixedSupplierRepo) GetByProduct(_ context.Context, _ string) (*entity.Supplier, error) {
	return &entity.Supplier{ID: "sup-1", Name: "Supplier Corp", ContactEmail: "orders@supplier.com"}, nil
}

func buildTestApp() *fiber.App {
	policy := alerting.NewThresholdPolicy(map[string]int{"normal": 20})
	alertUC := alerts.NewAlertUseCase(
		fixedCompanyRepo{}, fixedWarehouseRepo{}, fixedInventoryRepo{},
		fixedProductRepo{}, fixedSaleRepo{}, fixedSupplierRepo{},
		policy, 90, 30,
	)
	companyUC := usecase.NewCompanyUseCase(fixedCompanyRepo{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{CompanyUC: companyUC, AlertUC: alertUC})
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_ReturnsAlertPayload(t *testing.T) {
	app := buildTestApp()
	resp := doGet(t, app, "/api/companies/"+testCompanyID+"/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Alerts []struct {
			ProductID         string  `json:"product_id"`
			SKU               string  `json:"sku"`
			WarehouseName     string  `json:"warehouse_name"`
			CurrentStock      int     `json:"current_stock"`
			Threshold         int     `json:"threshold"`
			DaysUntilStockout *int    `json:"days_until_stockout"`
			Supplier          *struct {
				Name         string `json:"name"`
				ContactEmail string `json:"contact_email"`
			} `json:"supplier"`
		} `json:"alerts"`
		TotalAlerts int `json:"total_alerts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Equal(t, 1, body.TotalAlerts)
	require.Len(t, body.Alerts, 1)
	alert := body.Alerts[0]
	assert.Equal(t, testProductID, alert.ProductID)
	assert.Equal(t, "WID-001", alert.SKU)
	assert.Equal(t, "Main Warehouse", alert.WarehouseName)
	assert.Equal(t, 5, alert.CurrentStock)
	assert.Equal(t, 20, alert.Threshold)
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, 15, *alert.DaysUntilStockout)
	require.NotNil(t, alert.Supplier)
	assert.Equal(t, "orders@supplier.com", alert.Supplier.ContactEmail)
}

func TestLowStock_UnknownCompanyReturns404(t *testing.T) {
	app := buildTestApp()
	resp := doGet(t, app, "/api/companies/unknown-id/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestGetCompanyByID(t *testing.T) {
	app := buildTestApp()
	resp := doGet(t, app, "/api/companies/"+testCompanyID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Acme Corp", body["name"])
}

func TestListCompanies(t *testing.T) {
	app := buildTestApp()
	resp := doGet(t, app, "/api/companies?limit=10")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, testCompanyID, body.Items[0].ID)
}
