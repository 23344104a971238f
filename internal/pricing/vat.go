package pricing

import "math"

// VATRate is the Czech standard VAT rate applied to every product.
const VATRate = 0.21

// AddVat converts a net amount (whole CZK) to the gross amount at the
// standard 21% rate, rounded to the nearest crown.
func AddVat(net int64) int64 {
	return int64(math.Round(float64(net) * (1 + VATRate)))
}

// PackagePrice computes the net price of one package from the net
// per-unit price and the package coverage (e.g. m2 of flooring per box),
// rounded to the nearest crown.
func PackagePrice(unitNet int64, coverage float64) int64 {
	return int64(math.Round(float64(unitNet) * coverage))
}
