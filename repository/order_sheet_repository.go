package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"

	"navillera/models"
	"navillera/utils"
)

const orderSheetName = "Sheet1"

var orderSheetHeaders = []interface{}{
	"Customer Name",
	"Phone",
	"Pickup Time",
	"Meetup Place",
	"Delivery Date",
	"Size",
	"Charms",
	"Subtotal",
	"Delivery Fee",
	"Total",
	"Timestamp",
}

// OrderSheetRepository appends submitted orders to a Google Sheets
// spreadsheet, one row per order. Implements OrderRecorderInterface.
//
// The spreadsheet is read-then-appended without optimistic-concurrency
// protection; concurrent submissions could race on row placement. Accepted
// for single-operator usage.
type OrderSheetRepository struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewOrderSheetRepository creates a new OrderSheetRepository.
func NewOrderSheetRepository(svc *sheets.Service, spreadsheetID string) *OrderSheetRepository {
	return &OrderSheetRepository{svc: svc, spreadsheetID: spreadsheetID}
}

// Ensure OrderSheetRepository implements both order interfaces
var (
	_ OrderRecorderInterface = (*OrderSheetRepository)(nil)
	_ OrderReaderInterface   = (*OrderSheetRepository)(nil)
)

// Append writes one order row, creating the header row first if the sheet is
// empty.
func (r *OrderSheetRepository) Append(ctx context.Context, order *models.Order) error {
	if err := r.ensureHeaders(ctx); err != nil {
		return err
	}

	row := []interface{}{
		order.CustomerName,
		order.PhoneNumber,
		order.PickupTime,
		order.MeetupPlace,
		order.DeliveryDate,
		order.BraceletSize,
		charmsText(order.Charms),
		utils.FormatAED(order.Subtotal),
		utils.FormatAED(order.DeliveryFee),
		utils.FormatAED(order.Total),
		order.Timestamp,
	}

	_, err := r.svc.Spreadsheets.Values.Append(r.spreadsheetID, orderSheetName+"!A2:K", &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append order row: %w", err)
	}
	return nil
}

func (r *OrderSheetRepository) ensureHeaders(ctx context.Context) error {
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, orderSheetName+"!A1:K1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read order sheet headers: %w", err)
	}
	if len(resp.Values) > 0 {
		return nil
	}

	_, err = r.svc.Spreadsheets.Values.Update(r.spreadsheetID, orderSheetName+"!A1:K1", &sheets.ValueRange{
		Values: [][]interface{}{orderSheetHeaders},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write order sheet headers: %w", err)
	}
	return nil
}

// List reads every recorded order row back for the admin listing.
func (r *OrderSheetRepository) List(ctx context.Context) ([]models.OrderRecord, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, orderSheetName+"!A2:K").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read order rows: %w", err)
	}

	records := make([]models.OrderRecord, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		records = append(records, orderFromRow(row))
	}
	return records, nil
}

// orderFromRow converts one sheet row back into an OrderRecord. Cells the
// operator mangled by hand degrade to zero values rather than failing the
// whole listing.
func orderFromRow(row []interface{}) models.OrderRecord {
	cell := func(i int) string {
		if i >= len(row) {
			return ""
		}
		switch v := row[i].(type) {
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return ""
	}
	money := func(i int) int64 {
		fils, err := utils.ParseAED(cell(i))
		if err != nil {
			return 0
		}
		return fils
	}

	size, _ := strconv.Atoi(cell(5))
	return models.OrderRecord{
		CustomerName: cell(0),
		PhoneNumber:  cell(1),
		PickupTime:   cell(2),
		MeetupPlace:  cell(3),
		DeliveryDate: cell(4),
		BraceletSize: size,
		Charms:       cell(6),
		Subtotal:     money(7),
		DeliveryFee:  money(8),
		Total:        money(9),
		Timestamp:    cell(10),
	}
}

// charmsText renders the positioned charm list as one readable cell.
// Plain (placeholder-band) entries are filtered; an order of only plain
// charms records as "All Plain".
func charmsText(charms []models.OrderCharm) string {
	var parts []string
	for _, c := range charms {
		if c.Filename == "" || strings.Contains(c.Filename, "Plain") {
			continue
		}
		parts = append(parts, fmt.Sprintf("[%d] %s (%s)", c.Position, c.Filename, utils.FormatAED(c.Price)))
	}
	if len(parts) == 0 {
		return "All Plain"
	}
	return strings.Join(parts, ", ")
}
