package domain

// SolutionEntry is the realized projection of one (cashier, client)
// candidate after solving. For active entries start/end are the concrete
// service window; inactive entries (only returned on request) carry the
// candidate's default window and Active == false.
type SolutionEntry struct {
	Cashier  *Cashier `json:"-"`
	Client   *Client  `json:"-"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Duration int      `json:"duration"`
	Active   bool     `json:"active"`
}

// InMorning reports whether the entry's service belongs to the morning
// shift. Classification goes by start minute, not arrival minute.
func (e *SolutionEntry) InMorning() bool {
	return e.Start <= MorningEnd
}

// TimetableEntry is the wire representation of one served client.
type TimetableEntry struct {
	CashierName string `json:"cashier_name"`
	ClientID    int    `json:"client_id"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Duration    int    `json:"duration"`
	Products    int    `json:"products"`
}

// Timetable flattens the active entries into their wire form, one row per
// served client.
func Timetable(entries []SolutionEntry) []TimetableEntry {
	rows := make([]TimetableEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Active {
			continue
		}
		rows = append(rows, TimetableEntry{
			CashierName: e.Cashier.Name,
			ClientID:    e.Client.ID,
			Start:       e.Start,
			End:         e.End,
			Duration:    e.Duration,
			Products:    e.Client.Products,
		})
	}
	return rows
}
