package domain

// Cashier is one till operator in the day's roster. The two availability
// flags decide which shifts the cashier may receive clients in; a cashier
// with both flags false is legal but can never be assigned work.
type Cashier struct {
	Name                    string  `json:"name"`
	AvailableInTheMorning   bool    `json:"available_in_the_morning"`
	AvailableInTheAfternoon bool    `json:"available_in_the_afternoon"`
	EffectivenessAverage    float64 `json:"effectiveness_average"` // throughput multiplier, > 0
}

// AvailableFor reports whether the cashier may serve a client arriving at
// the given minute of the business day.
func (c *Cashier) AvailableFor(arrivalTime int) bool {
	if arrivalTime <= MorningEnd {
		return c.AvailableInTheMorning
	}
	return c.AvailableInTheAfternoon
}
