package models

import (
	"bytes"
	"encoding/json"
)

// AccountType is a caller-declared display hint. It does not affect parsing.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountCredit   AccountType = "credit"
)

// ParseAccountType maps a raw form value to an AccountType, defaulting to checking.
func ParseAccountType(s string) AccountType {
	if s == string(AccountCredit) {
		return AccountCredit
	}
	return AccountChecking
}

// Transaction represents a single normalized statement line item.
// Date is kept exactly as found in the source (MM/DD, MM/DD/YYYY, or bank-native
// text) and is never resolved to a concrete year here; consumers that chart
// MM/DD dates assume the current calendar year.
type Transaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"` // Signed: negative for expenses, positive for inflows
	Category    string  `json:"category"`
	Service     string  `json:"service,omitempty"` // Empty when no service keyword matched
}

// ProcessedData is the aggregated report for one uploaded statement.
// Field names form the contract consumed by the presentation layer.
type ProcessedData struct {
	Total                float64       `json:"total"` // Sum of |amount| over expense transactions only
	Transactions         []Transaction `json:"transactions"`
	Categories           CategoryMap   `json:"categories"`
	Services             []string      `json:"services"`
	NumberOfTransactions int           `json:"numberOfTransactions"`
	AccountType          AccountType   `json:"accountType"`
}

// ValidationResult reports whether an uploaded file may enter the pipeline.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// CategoryMap groups transactions by category while preserving the order in
// which categories first occurred. A plain map would lose that order, and the
// report contract requires it to survive JSON encoding.
type CategoryMap struct {
	keys   []string
	groups map[string][]Transaction
}

// NewCategoryMap creates an empty CategoryMap.
func NewCategoryMap() CategoryMap {
	return CategoryMap{groups: make(map[string][]Transaction)}
}

// Add appends a transaction to its category bucket, registering the category
// on first occurrence.
func (m *CategoryMap) Add(category string, txn Transaction) {
	if m.groups == nil {
		m.groups = make(map[string][]Transaction)
	}
	if _, ok := m.groups[category]; !ok {
		m.keys = append(m.keys, category)
	}
	m.groups[category] = append(m.groups[category], txn)
}

// Get returns the transactions in a category bucket.
func (m CategoryMap) Get(category string) []Transaction {
	return m.groups[category]
}

// Keys returns the category labels in first-occurrence order.
func (m CategoryMap) Keys() []string {
	return m.keys
}

// Len returns the number of category buckets.
func (m CategoryMap) Len() int {
	return len(m.keys)
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m CategoryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.groups[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the map, keeping document key order.
func (m *CategoryMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &json.UnmarshalTypeError{Value: "non-object", Type: nil}
	}

	m.keys = nil
	m.groups = make(map[string][]Transaction)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return &json.UnmarshalTypeError{Value: "non-string key", Type: nil}
		}

		var txns []Transaction
		if err := dec.Decode(&txns); err != nil {
			return err
		}
		m.keys = append(m.keys, key)
		m.groups[key] = txns
	}

	_, err = dec.Token() // closing brace
	return err
}
