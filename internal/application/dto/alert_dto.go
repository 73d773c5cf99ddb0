package dto

// SupplierContact supplier contact info attached to an alert.
type SupplierContact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlert one under-stocked (product, warehouse) pair.
// DaysUntilStockout is null when the product shows no consumption in the
// averaging window; Supplier is null for products without one.
type LowStockAlert struct {
	ProductID         string           `json:"product_id"`
	ProductName       string           `json:"product_name"`
	SKU               string           `json:"sku"`
	WarehouseID       string           `json:"warehouse_id"`
	WarehouseName     string           `json:"warehouse_name"`
	CurrentStock      int              `json:"current_stock"`
	Threshold         int              `json:"threshold"`
	DaysUntilStockout *int             `json:"days_until_stockout"`
	Supplier          *SupplierContact `json:"supplier"`
}

// LowStockAlertsResponse body of the low-stock alerts endpoint.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}
