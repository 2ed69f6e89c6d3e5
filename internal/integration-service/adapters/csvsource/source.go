// Package csvsource reads intake batches from CSV files. Columns are located
// by header name, so their order in the file does not matter.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/ports"
)

var _ ports.RecordSource = (*Source)(nil)

// Columns lists the header names of an intake file.
var Columns = []string{
	"id", "first_name", "last_name", "email", "supplier_pid",
	"credit_card_number", "credit_card_type", "order_id", "product_pid",
	"shipping_address", "country", "date_created", "quantity", "full_name",
	"order_status",
}

var ErrMissingColumn = errors.New("csv: missing column")

type Source struct{}

func New() *Source { return &Source{} }

// Read parses the whole file. Values are kept verbatim; short rows yield
// empty fields.
func (s *Source) Read(ctx context.Context, path string) ([]domain.IntakeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	records, err := Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", path, err)
	}
	return records, nil
}

// Parse reads an intake document from r.
func Parse(ctx context.Context, r io.Reader) ([]domain.IntakeRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}

	var records []domain.IntakeRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		get := func(col string) string {
			i := index[col]
			if i < len(row) {
				return row[i]
			}
			return ""
		}

		records = append(records, domain.IntakeRecord{
			ID:               get("id"),
			FirstName:        get("first_name"),
			LastName:         get("last_name"),
			Email:            get("email"),
			SupplierPID:      get("supplier_pid"),
			CreditCardNumber: get("credit_card_number"),
			CreditCardType:   get("credit_card_type"),
			OrderID:          get("order_id"),
			ProductPID:       get("product_pid"),
			ShippingAddress:  get("shipping_address"),
			Country:          get("country"),
			DateCreated:      get("date_created"),
			Quantity:         get("quantity"),
			FullName:         get("full_name"),
			OrderStatus:      get("order_status"),
			Line:             line,
		})
	}
	return records, nil
}
