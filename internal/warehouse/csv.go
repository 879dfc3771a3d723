package warehouse

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"sales-dashboard/internal/models"
)

const (
	batchSize  = 10000
	maxWorkers = 10
	columns    = 17
)

// CSVSource streams a flat extract of the consolidated sales query. Column
// order matches salesQuery: transaction_id, transaction_date, quantity_sold,
// total_amount, customer_name, customer_city, customer_state, store_name,
// store_city, store_state, product_name, brand, category, salesperson_name,
// year, month, day. Dimension columns of a left-join miss are empty.
type CSVSource struct {
	path   string
	logger *slog.Logger
}

func NewCSVSource(path string, logger *slog.Logger) *CSVSource {
	return &CSVSource{
		path:   path,
		logger: logger,
	}
}

func (s *CSVSource) Load(ctx context.Context) ([]models.SalesRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024) // 10MB buffer

	// Skip header
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty file")
	}

	start := time.Now()

	var (
		records []models.SalesRecord
		skipped int
	)

	batch := make([]string, 0, batchSize)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		batch = append(batch, scanner.Text())

		if len(batch) >= batchSize {
			records, skipped, err = s.parseBatch(ctx, batch, records, skipped)
			if err != nil {
				return nil, err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		records, skipped, err = s.parseBatch(ctx, batch, records, skipped)
		if err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan error: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no valid records found")
	}

	s.logger.Info("csv extract loaded",
		"file", s.path,
		"rows", len(records),
		"skipped", skipped,
		"duration", time.Since(start),
	)

	return records, nil
}

// parseBatch parses one batch of lines in parallel. Results stay in line
// order so downstream stable sorts keep the original row order among ties.
func (s *CSVSource) parseBatch(ctx context.Context, batch []string, records []models.SalesRecord, skipped int) ([]models.SalesRecord, int, error) {
	type parsed struct {
		rec   models.SalesRecord
		valid bool
	}

	results := make([]parsed, len(batch))

	var wg errgroup.Group
	wg.SetLimit(maxWorkers)

	for i, line := range batch {
		wg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rec, err := parseRecord(line)
			if err != nil {
				return nil // skip invalid rows
			}
			results[i] = parsed{rec: rec, valid: true}
			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		return nil, skipped, err
	}

	for _, p := range results {
		if !p.valid {
			skipped++
			continue
		}
		records = append(records, p.rec)
	}

	return records, skipped, nil
}

func parseRecord(line string) (models.SalesRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) < columns {
		return models.SalesRecord{}, fmt.Errorf("insufficient columns")
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(fields[1]))
	if err != nil {
		return models.SalesRecord{}, err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return models.SalesRecord{}, err
	}

	total, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return models.SalesRecord{}, err
	}

	rec := models.SalesRecord{
		TransactionID:   strings.TrimSpace(fields[0]),
		Date:            date,
		Quantity:        quantity,
		TotalAmount:     total,
		CustomerName:    strings.TrimSpace(fields[4]),
		CustomerCity:    strings.TrimSpace(fields[5]),
		CustomerState:   strings.TrimSpace(fields[6]),
		StoreName:       strings.TrimSpace(fields[7]),
		StoreCity:       strings.TrimSpace(fields[8]),
		StoreState:      strings.TrimSpace(fields[9]),
		ProductName:     strings.TrimSpace(fields[10]),
		Brand:           strings.TrimSpace(fields[11]),
		Category:        strings.TrimSpace(fields[12]),
		SalespersonName: strings.TrimSpace(fields[13]),
	}

	// The date-dimension columns are optional in extracts; a miss leaves
	// them blank and they get backfilled from the transaction date.
	rec.Year, _ = strconv.Atoi(strings.TrimSpace(fields[14]))
	rec.Month, _ = strconv.Atoi(strings.TrimSpace(fields[15]))
	rec.Day, _ = strconv.Atoi(strings.TrimSpace(fields[16]))

	return rec, nil
}
