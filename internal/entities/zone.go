package entities

// ZoneLabel renders a slot's zone flag the way receipts and reports
// print it.
func ZoneLabel(isVIP bool) string {
	if isVIP {
		return "VIP"
	}
	return "STD"
}
