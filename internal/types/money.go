// README: Common money value object used across modules.
package types

// Money is an amount in minor currency units (paise for INR).
type Money struct {
	Amount   int64
	Currency string
}

// Rupees returns the amount expressed in major units.
func (m Money) Rupees() float64 {
	return float64(m.Amount) / 100
}
