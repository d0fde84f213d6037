package taxmath

// HRAExemption implements spec.md §4.2's three-formula minimum: the HRA
// actually received, rent paid less 10% of basic salary, and 50% of
// basic in a metro city or 40% elsewhere — all for the same annual
// period — floored at zero (rent below 10% of basic, or no rent at all,
// must never produce a negative exemption).
func HRAExemption(basicAnnual, hraReceivedAnnual, rentPaidAnnual int, isMetro bool) int {
	cityRate := 0.40
	if isMetro {
		cityRate = 0.50
	}

	rentLessTenPct := rentPaidAnnual - roundHalfAwayFromZero(float64(basicAnnual)*0.10)
	cityShare := roundHalfAwayFromZero(float64(basicAnnual) * cityRate)

	exemption := hraReceivedAnnual
	if rentLessTenPct < exemption {
		exemption = rentLessTenPct
	}
	if cityShare < exemption {
		exemption = cityShare
	}
	if exemption < 0 {
		return 0
	}
	return exemption
}
