package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceStatus represents the lifecycle state of a full tax invoice.
// The only legal transition is issued -> cancelled; invoices are never deleted.
type InvoiceStatus int

const (
	InvoiceIssued    InvoiceStatus = 0
	InvoiceCancelled InvoiceStatus = 1
)

func (s InvoiceStatus) String() string {
	names := [...]string{"issued", "cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "issued"
	}
	return names[s]
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "issued":
		*s = InvoiceIssued
	case "cancelled":
		*s = InvoiceCancelled
	}
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceIssued
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}
