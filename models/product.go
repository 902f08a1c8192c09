package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ProductID is a catalog identifier compared as text.
// The catalog may store it as a JSON string or a JSON number; both decode to the same text.
type ProductID string

// String returns the identifier as text
func (id ProductID) String() string {
	return string(id)
}

// UnmarshalJSON accepts "12", 12 and 12.5. null decodes to an empty identifier.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid product id: %w", err)
		}
		*id = ProductID(s)
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid product id %s: expected string or number", string(data))
	}
	*id = ProductID(formatNumber(f))
	return nil
}

// formatNumber renders f the way a browser prints a number: shortest digits,
// 1.0 as "1", -0 as "0", and exponent form below 1e-6 or from 1e21 up.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Go pads the exponent to two digits ("1e-07")
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// Product represents a single record of the catalog file
type Product struct {
	ID          ProductID `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`       // Whole Rupiah
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Image       string    `json:"image"`       // Base image URL or path
}

// UnmarshalJSON decodes a catalog record. The price may be written in any
// JSON number form (50000, 50000.0, 5e4) but must be a whole amount.
func (p *Product) UnmarshalJSON(data []byte) error {
	type productAlias Product
	aux := struct {
		*productAlias
		Price json.Number `json:"price"`
	}{productAlias: (*productAlias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	price, err := parsePrice(aux.Price)
	if err != nil {
		return fmt.Errorf("product %s: %w", p.ID, err)
	}
	p.Price = price
	return nil
}

func parsePrice(n json.Number) (int64, error) {
	if n == "" {
		return 0, nil
	}
	if v, err := n.Int64(); err == nil {
		return v, nil
	}

	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("invalid price %s: %w", n, err)
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("invalid price %s: expected a whole amount", n)
	}
	return int64(f), nil
}
