package repository

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"google.golang.org/api/sheets/v4"
)

const stockSheetName = "Stock"

// StockSheetRepository persists per-charm stock quantities in a "Stock"
// sheet of the order spreadsheet: one row per charm with name, quantity,
// and last-updated timestamp. Implements StockRepositoryInterface.
type StockSheetRepository struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewStockSheetRepository creates a new StockSheetRepository.
func NewStockSheetRepository(svc *sheets.Service, spreadsheetID string) *StockSheetRepository {
	return &StockSheetRepository{svc: svc, spreadsheetID: spreadsheetID}
}

// Ensure StockSheetRepository implements StockRepositoryInterface
var _ StockRepositoryInterface = (*StockSheetRepository)(nil)

// ensureSheet creates the Stock sheet with its header row if it is missing.
func (r *StockSheetRepository) ensureSheet(ctx context.Context) error {
	_, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, stockSheetName+"!A1:C1").Context(ctx).Do()
	if err == nil {
		return nil
	}

	_, err = r.svc.Spreadsheets.BatchUpdate(r.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: stockSheetName},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to create stock sheet: %w", err)
	}

	_, err = r.svc.Spreadsheets.Values.Update(r.spreadsheetID, stockSheetName+"!A1:C1", &sheets.ValueRange{
		Values: [][]interface{}{{"Charm Name", "Stock Quantity", "Last Updated"}},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write stock sheet headers: %w", err)
	}

	log.Printf("✅ Created stock sheet %q", stockSheetName)
	return nil
}

// GetAll returns the stock mapping charm name -> quantity. Rows with an
// unparsable quantity count as 0.
func (r *StockSheetRepository) GetAll(ctx context.Context) (map[string]int, error) {
	if err := r.ensureSheet(ctx); err != nil {
		return nil, err
	}

	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, stockSheetName+"!A2:C").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read stock rows: %w", err)
	}

	stock := make(map[string]int)
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		name, _ := row[0].(string)
		if name == "" {
			continue
		}
		qty := 0
		if len(row) > 1 {
			switch v := row[1].(type) {
			case string:
				qty, _ = strconv.Atoi(v)
			case float64:
				qty = int(v)
			}
		}
		stock[name] = qty
	}
	return stock, nil
}

// Set updates the stock quantity for one charm, appending a new row when the
// charm has none yet. Quantities are clamped non-negative. Returns the
// stored quantity.
func (r *StockSheetRepository) Set(ctx context.Context, charmName string, quantity int) (int, error) {
	if err := r.ensureSheet(ctx); err != nil {
		return 0, err
	}

	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, stockSheetName+"!A2:C").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to read stock rows: %w", err)
	}

	rowIndex := -1
	for i, row := range resp.Values {
		if len(row) > 0 {
			if name, _ := row[0].(string); name == charmName {
				rowIndex = i + 2 // values start at row 2
				break
			}
		}
	}

	if quantity < 0 {
		quantity = 0
	}
	row := []interface{}{charmName, quantity, time.Now().UTC().Format(time.RFC3339)}

	if rowIndex > 0 {
		rangeRef := fmt.Sprintf("%s!A%d:C%d", stockSheetName, rowIndex, rowIndex)
		_, err = r.svc.Spreadsheets.Values.Update(r.spreadsheetID, rangeRef, &sheets.ValueRange{
			Values: [][]interface{}{row},
		}).ValueInputOption("RAW").Context(ctx).Do()
	} else {
		_, err = r.svc.Spreadsheets.Values.Append(r.spreadsheetID, stockSheetName+"!A2:C", &sheets.ValueRange{
			Values: [][]interface{}{row},
		}).ValueInputOption("RAW").Context(ctx).Do()
	}
	if err != nil {
		return 0, fmt.Errorf("failed to write stock row: %w", err)
	}

	log.Printf("✅ Stock updated: %s = %d", charmName, quantity)
	return quantity, nil
}
