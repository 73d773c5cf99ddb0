package alerts

import (
	"context"
	"time"

	"github.com/SanchitKumbhar/Bynry-Task/internal/application/dto"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/alerting"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/repository"
)

// AlertUseCase computes the low-stock alerts of a company across all of its
// warehouses. Pure read path: it only pulls entity snapshots from the
// repositories and assembles the response, holding no state between calls.
type AlertUseCase struct {
	companyRepo   repository.CompanyRepository
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	saleRepo      repository.SaleRepository
	supplierRepo  repository.SupplierRepository
	policy        *alerting.ThresholdPolicy
	lookbackDays  int
	avgWindowDays int
}

// NewAlertUseCase builds the use case. lookbackDays gates products on recent
// sales activity; avgWindowDays is the window for the average daily rate.
// The two windows are independent and usually differ.
func NewAlertUseCase(
	companyRepo repository.CompanyRepository,
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	supplierRepo repository.SupplierRepository,
	policy *alerting.ThresholdPolicy,
	lookbackDays, avgWindowDays int,
) *AlertUseCase {
	return &AlertUseCase{
		companyRepo:   companyRepo,
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		saleRepo:      saleRepo,
		supplierRepo:  supplierRepo,
		policy:        policy,
		lookbackDays:  lookbackDays,
		avgWindowDays: avgWindowDays,
	}
}

// ComputeAlerts returns every (product, warehouse) pair of the company whose
// stock is under the product-type threshold, restricted to products with at
// least one sale inside the lookback window. Returns domain.ErrCompanyNotFound
// when the company does not exist; any repository failure aborts the whole
// computation, never a partial list.
func (uc *AlertUseCase) ComputeAlerts(ctx context.Context, companyID string, now time.Time) (*dto.LowStockAlertsResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	warehouses, err := uc.warehouseRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := &dto.LowStockAlertsResponse{Alerts: []dto.LowStockAlert{}}
	if len(warehouses) == 0 {
		return out, nil
	}

	warehouseIDs := make([]string, 0, len(warehouses))
	warehouseNames := make(map[string]string, len(warehouses))
	for _, w := range warehouses {
		warehouseIDs = append(warehouseIDs, w.ID)
		warehouseNames[w.ID] = w.Name
	}

	inventories, err := uc.inventoryRepo.ListByWarehouses(ctx, warehouseIDs)
	if err != nil {
		return nil, err
	}

	// Group rows by product, keeping first-seen order so repeated runs over
	// unchanged data produce the same alert order.
	rowsByProduct := make(map[string][]*entity.Inventory)
	productOrder := make([]string, 0, len(inventories))
	for _, inv := range inventories {
		if _, seen := rowsByProduct[inv.ProductID]; !seen {
			productOrder = append(productOrder, inv.ProductID)
		}
		rowsByProduct[inv.ProductID] = append(rowsByProduct[inv.ProductID], inv)
	}

	for _, productID := range productOrder {
		product, err := uc.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}

		sales, err := uc.saleRepo.ListByProduct(ctx, productID)
		if err != nil {
			return nil, err
		}

		// Only products with recent sales activity produce alerts.
		if !alerting.HasRecentActivity(sales, now, uc.lookbackDays) {
			continue
		}

		threshold := uc.policy.ThresholdFor(product.ProductType)
		rate := alerting.AverageDailyRate(sales, now, uc.avgWindowDays)

		var supplier *dto.SupplierContact
		supplierResolved := false

		for _, inv := range rowsByProduct[productID] {
			if inv.Quantity >= threshold {
				continue
			}
			if !supplierResolved {
				s, err := uc.supplierRepo.GetByProduct(ctx, productID)
				if err != nil {
					return nil, err
				}
				if s != nil {
					supplier = &dto.SupplierContact{
						ID:           s.ID,
						Name:         s.Name,
						ContactEmail: s.ContactEmail,
					}
				}
				supplierResolved = true
			}

			out.Alerts = append(out.Alerts, dto.LowStockAlert{
				ProductID:         product.ID,
				ProductName:       product.Name,
				SKU:               product.SKU,
				WarehouseID:       inv.WarehouseID,
				WarehouseName:     warehouseNames[inv.WarehouseID],
				CurrentStock:      inv.Quantity,
				Threshold:         threshold,
				DaysUntilStockout: alerting.DaysUntilStockout(inv.Quantity, rate),
				Supplier:          supplier,
			})
		}
	}

	out.TotalAlerts = len(out.Alerts)
	return out, nil
}
