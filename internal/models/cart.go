package models

import "github.com/shopspring/decimal"

// CartLine est une ligne du panier : le prix unitaire est figé au premier ajout.
type CartLine struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal retourne unitPrice * quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type SnapshotLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// Snapshot est la projection complète du panier poussée aux sinks après chaque mutation.
type Snapshot struct {
	Lines      []SnapshotLine `json:"lines"`
	GrandTotal string         `json:"grand_total"`
}
