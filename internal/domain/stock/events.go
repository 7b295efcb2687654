package stock

import "time"

const (
	EventStockDeducted   = "StockDeducted"
	EventStockOverridden = "StockOverridden"
)

// StockDeducted records one deduction pass. Demand is what the order asked
// for; Applied is what was actually removed per tracked ingredient after
// clamping at zero.
type StockDeducted struct {
	Demand     map[string]int `json:"demand"`
	Applied    map[string]int `json:"applied"`
	DeductedAt time.Time      `json:"deducted_at"`
}

// StockOverridden records an administrative direct-set of one ingredient.
type StockOverridden struct {
	Ingredient   string    `json:"ingredient"`
	Quantity     int       `json:"quantity"`
	OverriddenAt time.Time `json:"overridden_at"`
}
