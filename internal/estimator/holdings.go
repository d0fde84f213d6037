package estimator

import (
	"time"

	"github.com/spiffler33/taxhawk/internal/model"
)

// RangeSpec describes one synthetic holding by a price/quantity range
// rather than an exact purchase record — useful for "what if I'd bought
// N shares sometime in this window" exploration.
type RangeSpec struct {
	SecurityName  string
	SecurityType  model.SecurityType
	PurchaseFrom  time.Time
	PurchaseTo    time.Time
	PurchasePrice float64
	Quantity      float64
	CurrentPrice  float64
}

// EstimateHoldings maps a slice of RangeSpec into Holdings by taking the
// midpoint of each purchase window as the purchase date — a crude but
// deterministic sampler, not a substitute for actual trade records.
func EstimateHoldings(specs []RangeSpec, realizedSTCG, realizedLTCG int) model.Holdings {
	positions := make([]model.Holding, 0, len(specs))
	for _, s := range specs {
		positions = append(positions, model.Holding{
			SecurityName:  s.SecurityName,
			SecurityType:  s.SecurityType,
			PurchaseDate:  midpoint(s.PurchaseFrom, s.PurchaseTo),
			PurchasePrice: s.PurchasePrice,
			Quantity:      s.Quantity,
			CurrentPrice:  s.CurrentPrice,
		})
	}
	return model.Holdings{
		Positions:          positions,
		RealizedSTCGThisFY: realizedSTCG,
		RealizedLTCGThisFY: realizedLTCG,
	}
}

func midpoint(a, b time.Time) time.Time {
	if b.Before(a) {
		a, b = b, a
	}
	return a.Add(b.Sub(a) / 2)
}
