package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"sales-dashboard/internal/models"
)

// salesQuery joins the sales fact to its five dimensions in the warehouse.
// Left joins keep fact rows whose dimension key has no match; those rows come
// back with null dimension columns.
const salesQuery = `
SELECT
    fs.transaction_id,
    fs.transaction_date,
    fs.quantity_sold,
    fs.total_amount,
    dc.name      AS customer_name,
    dc.city      AS customer_city,
    dc.state     AS customer_state,
    ds.name      AS store_name,
    ds.city      AS store_city,
    ds.state     AS store_state,
    dp.name      AS product_name,
    dp.brand     AS brand,
    dp.category  AS category,
    dv.name      AS salesperson_name,
    dd.year      AS year,
    dd.month     AS month,
    dd.day       AS day
FROM fact_sale fs
LEFT JOIN dim_customer dc    ON fs.customer_id = dc.customer_id
LEFT JOIN dim_store ds       ON fs.store_id = ds.store_code
LEFT JOIN dim_product dp     ON fs.product_id = dp.sku
LEFT JOIN dim_salesperson dv ON fs.salesperson_id = dv.badge_id
LEFT JOIN dim_date dd        ON fs.transaction_date = dd.full_date`

// OpenPostgres opens and pings a warehouse connection using the pgx stdlib
// driver.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open warehouse: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to warehouse: %w", err)
	}

	return db, nil
}

// PostgresSource loads the dataset from a SQL warehouse with one consolidated
// star-join query.
type PostgresSource struct {
	db      *sql.DB
	timeout time.Duration
	logger  *slog.Logger
}

func NewPostgresSource(db *sql.DB, timeout time.Duration, logger *slog.Logger) *PostgresSource {
	return &PostgresSource{
		db:      db,
		timeout: timeout,
		logger:  logger,
	}
}

func (s *PostgresSource) Load(ctx context.Context) ([]models.SalesRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()

	rows, err := s.db.QueryContext(ctx, salesQuery)
	if err != nil {
		return nil, fmt.Errorf("query sales data: %w", err)
	}
	defer rows.Close()

	var records []models.SalesRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales rows: %w", err)
	}

	s.logger.Info("warehouse snapshot loaded",
		"rows", len(records),
		"duration", time.Since(start),
	)

	return records, nil
}

func scanRecord(rows *sql.Rows) (models.SalesRecord, error) {
	var (
		rec models.SalesRecord

		customerName, customerCity, customerState sql.NullString
		storeName, storeCity, storeState          sql.NullString
		productName, brand, category              sql.NullString
		salespersonName                           sql.NullString
		year, month, day                          sql.NullInt64
	)

	err := rows.Scan(
		&rec.TransactionID,
		&rec.Date,
		&rec.Quantity,
		&rec.TotalAmount,
		&customerName, &customerCity, &customerState,
		&storeName, &storeCity, &storeState,
		&productName, &brand, &category,
		&salespersonName,
		&year, &month, &day,
	)
	if err != nil {
		return models.SalesRecord{}, err
	}

	rec.CustomerName = customerName.String
	rec.CustomerCity = customerCity.String
	rec.CustomerState = customerState.String
	rec.StoreName = storeName.String
	rec.StoreCity = storeCity.String
	rec.StoreState = storeState.String
	rec.ProductName = productName.String
	rec.Brand = brand.String
	rec.Category = category.String
	rec.SalespersonName = salespersonName.String
	rec.Year = int(year.Int64)
	rec.Month = int(month.Int64)
	rec.Day = int(day.Int64)

	return rec, nil
}
