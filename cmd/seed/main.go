// seed applies the schema and loads a small demo data set so the alerts
// endpoint returns results immediately: one company ("Acme Corp") with two
// warehouses, two supplied products, four inventory rows and a sales history
// where only "Widget A" and "Gizmo B" differ in recency of activity.
//
// Usage: go run ./cmd/seed [path/to/migrations/001_init.sql]
// By default the migration is read from internal/infrastructure/postgres/migrations.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SanchitKumbhar/Bynry-Task/internal/infrastructure/postgres"
	"github.com/SanchitKumbhar/Bynry-Task/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	migrationPath := "internal/infrastructure/postgres/migrations/001_init.sql"
	if len(os.Args) > 1 {
		migrationPath = os.Args[1]
	}
	ddl, err := os.ReadFile(migrationPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read migration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL connection: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, string(ddl)); err != nil {
		fmt.Fprintf(os.Stderr, "apply schema: %v\n", err)
		os.Exit(1)
	}

	// Start from a clean slate so the seeder is re-runnable.
	if _, err := pool.Exec(ctx, `TRUNCATE companies, warehouses, suppliers, products, inventories, sales CASCADE`); err != nil {
		fmt.Fprintf(os.Stderr, "truncate: %v\n", err)
		os.Exit(1)
	}

	now := time.Now().UTC()

	companyID := uuid.New().String()
	w1 := uuid.New().String()
	w2 := uuid.New().String()
	s1 := uuid.New().String()
	s2 := uuid.New().String()
	p1 := uuid.New().String()
	p2 := uuid.New().String()

	exec := func(query string, args ...any) {
		if _, err := pool.Exec(ctx, query, args...); err != nil {
			fmt.Fprintf(os.Stderr, "seed insert: %v\n", err)
			os.Exit(1)
		}
	}

	exec(`INSERT INTO companies (id, name) VALUES ($1, $2)`, companyID, "Acme Corp")

	exec(`INSERT INTO warehouses (id, company_id, name) VALUES ($1, $2, $3)`, w1, companyID, "Main Warehouse")
	exec(`INSERT INTO warehouses (id, company_id, name) VALUES ($1, $2, $3)`, w2, companyID, "Overflow Warehouse")

	exec(`INSERT INTO suppliers (id, name, contact_email) VALUES ($1, $2, $3)`, s1, "Supplier Corp", "orders@supplier.com")
	exec(`INSERT INTO suppliers (id, name, contact_email) VALUES ($1, $2, $3)`, s2, "Another Supplies", "hello@another.com")

	exec(`INSERT INTO products (id, name, sku, product_type, supplier_id, price) VALUES ($1, $2, $3, $4, $5, $6)`,
		p1, "Widget A", "WID-001", "normal", s1, decimal.NewFromFloat(9.50))
	exec(`INSERT INTO products (id, name, sku, product_type, supplier_id, price) VALUES ($1, $2, $3, $4, $5, $6)`,
		p2, "Gizmo B", "GIZ-002", "fast-moving", s2, decimal.NewFromFloat(24.90))

	// Widget A sits below the "normal" threshold (20) in both warehouses;
	// Gizmo B only in the overflow warehouse.
	exec(`INSERT INTO inventories (id, product_id, warehouse_id, quantity) VALUES ($1, $2, $3, $4)`, uuid.New().String(), p1, w1, 5)
	exec(`INSERT INTO inventories (id, product_id, warehouse_id, quantity) VALUES ($1, $2, $3, $4)`, uuid.New().String(), p1, w2, 0)
	exec(`INSERT INTO inventories (id, product_id, warehouse_id, quantity) VALUES ($1, $2, $3, $4)`, uuid.New().String(), p2, w1, 200)
	exec(`INSERT INTO inventories (id, product_id, warehouse_id, quantity) VALUES ($1, $2, $3, $4)`, uuid.New().String(), p2, w2, 10)

	exec(`INSERT INTO sales (id, product_id, quantity, occurred_at) VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), p1, 10, now.AddDate(0, 0, -5))
	exec(`INSERT INTO sales (id, product_id, quantity, occurred_at) VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), p2, 100, now.AddDate(0, 0, -200))
	exec(`INSERT INTO sales (id, product_id, quantity, occurred_at) VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), p2, 60, now.AddDate(0, 0, -10))

	fmt.Printf("Sample data seeded. Company ID: %s\n", companyID)
}
