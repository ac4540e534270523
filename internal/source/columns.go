package source

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nao1215/pymoli/internal/model"
)

// Default column names, as found in the storefront export.
const (
	DefaultPurchaseIDColumn = "Purchase ID"
	DefaultScreenNameColumn = "SN"
	DefaultAgeColumn        = "Age"
	DefaultGenderColumn     = "Gender"
	DefaultItemIDColumn     = "Item ID"
	DefaultItemNameColumn   = "Item Name"
	DefaultPriceColumn      = "Price"
)

// Columns names the input column holding each PurchaseRecord field.
type Columns struct {
	PurchaseID string
	ScreenName string
	Age        string
	Gender     string
	ItemID     string
	ItemName   string
	Price      string
}

// DefaultColumns returns the column names of the storefront export.
func DefaultColumns() Columns {
	return Columns{
		PurchaseID: DefaultPurchaseIDColumn,
		ScreenName: DefaultScreenNameColumn,
		Age:        DefaultAgeColumn,
		Gender:     DefaultGenderColumn,
		ItemID:     DefaultItemIDColumn,
		ItemName:   DefaultItemNameColumn,
		Price:      DefaultPriceColumn,
	}
}

// Merge returns c with every empty name replaced by the one in defaults.
func (c Columns) Merge(defaults Columns) Columns {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Columns{
		PurchaseID: pick(c.PurchaseID, defaults.PurchaseID),
		ScreenName: pick(c.ScreenName, defaults.ScreenName),
		Age:        pick(c.Age, defaults.Age),
		Gender:     pick(c.Gender, defaults.Gender),
		ItemID:     pick(c.ItemID, defaults.ItemID),
		ItemName:   pick(c.ItemName, defaults.ItemName),
		Price:      pick(c.Price, defaults.Price),
	}
}

// names returns the column names in record field order.
func (c Columns) names() []string {
	return []string{c.PurchaseID, c.ScreenName, c.Age, c.Gender, c.ItemID, c.ItemName, c.Price}
}

// indexColumns maps each required column to its position in header.
// Header names are compared after trimming surrounding space.
func indexColumns(header []string, columns Columns) ([]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	names := columns.names()
	idx := make([]int, len(names))
	for i, name := range names {
		pos, ok := positions[name]
		if !ok {
			return nil, &SchemaError{Column: name, Err: ErrMissingColumn}
		}
		idx[i] = pos
	}
	return idx, nil
}

// parseRecord converts the seven fields, in record field order, into a
// PurchaseRecord. row is used for error reporting only.
func parseRecord(fields []string, columns Columns, row int) (model.PurchaseRecord, error) {
	names := columns.names()
	invalid := func(i int, format string, args ...any) error {
		return &SchemaError{
			Row:    row,
			Column: names[i],
			Err:    fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...),
		}
	}

	purchaseID, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return model.PurchaseRecord{}, invalid(0, "%q is not an integer", fields[0])
	}

	age, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil || age < 0 {
		return model.PurchaseRecord{}, invalid(2, "%q is not a non-negative integer", fields[2])
	}

	itemID, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil {
		return model.PurchaseRecord{}, invalid(4, "%q is not an integer", fields[4])
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(fields[6]), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return model.PurchaseRecord{}, invalid(6, "%q is not a non-negative decimal", fields[6])
	}

	return model.PurchaseRecord{
		PurchaseID: purchaseID,
		ScreenName: fields[1],
		Age:        age,
		Gender:     fields[3],
		ItemID:     itemID,
		ItemName:   fields[5],
		Price:      price,
	}, nil
}
