package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Transaction type values as they appear in the receipt export. The export
// uses exactly these two strings; anything else is excluded from
// type-specific rollups.
const (
	TypeSales  = "Sales"
	TypeRefund = "Refund"
)

// Transaction represents one checkout event at a warehouse, either a sale or
// a refund. The JSON shape matches the receipt export from the member
// portal; fields the analytics engine never reads (register, barcode, tax
// split) still ride along for display.
// Note: refund transactions carry negative totals and negative line amounts.
type Transaction struct {
	TransactionType    string    `json:"transactionType"` // "Sales" or "Refund"
	TransactionNumber  int64     `json:"transactionNumber"`
	TransactionBarcode string    `json:"transactionBarcode"`
	DateTime           LocalTime `json:"transactionDateTime"`

	WarehouseName      string `json:"warehouseName"`
	WarehouseShortName string `json:"warehouseShortName"`
	WarehouseNumber    int    `json:"warehouseNumber"`
	WarehouseCity      string `json:"warehouseCity"`
	WarehouseState     string `json:"warehouseState"`

	Total          float64 `json:"total"`
	SubTotal       float64 `json:"subTotal"`
	Taxes          float64 `json:"taxes"`
	InstantSavings float64 `json:"instantSavings"`

	Items   []LineItem  `json:"itemArray"`
	Tenders []TenderUse `json:"tenderArray"`

	MembershipNumber string `json:"membershipNumber"`
}

// IsSale reports whether the transaction is a sale. The comparison is exact
// and case-sensitive, matching the export.
func (t *Transaction) IsSale() bool {
	return t.TransactionType == TypeSales
}

// IsRefund reports whether the transaction is a refund.
func (t *Transaction) IsRefund() bool {
	return t.TransactionType == TypeRefund
}

// LineItem is one product entry within a transaction. ItemNumber is an
// opaque identifier that is stable across transactions and serves as the
// join key for product rollups; Description is the receipt text used for
// display and for category/brand classification.
type LineItem struct {
	ItemNumber  string  `json:"itemNumber"`
	Description string  `json:"itemDescription01"`
	Amount      float64 `json:"amount"` // signed, matches the parent's polarity
	Unit        float64 `json:"unit"`
	TaxFlag     string  `json:"taxFlag"`
}

// TenderUse is one payment-instrument charge within a transaction. A single
// transaction may split across several tenders.
type TenderUse struct {
	TypeCode    string  `json:"tenderTypeCode"`
	Description string  `json:"tenderDescription"` // free text, e.g. "VISA"
	Amount      float64 `json:"amountTender"`
}

// LocalTime is a wall-clock timestamp without zone information. Receipt
// exports record the time at the register; it is parsed as-is, with no
// timezone normalization.
type LocalTime struct {
	time.Time
}

// localTimeLayouts are tried in order when decoding a timestamp.
var localTimeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("domain: timestamp is not a string: %w", err)
	}
	if s == "" {
		lt.Time = time.Time{}
		return nil
	}
	for _, layout := range localTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			lt.Time = t
			return nil
		}
	}
	return fmt.Errorf("domain: cannot parse timestamp %q", s)
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(lt.Format("2006-01-02T15:04:05"))
}
