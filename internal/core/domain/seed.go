package domain

// SequenceFloor makes sure a number counter starts after numbers already in use.
type SequenceFloor struct {
	Prefix string
	Year   int
	Value  int64
}

// DemoData is a complete set of demo documents written in one batch.
type DemoData struct {
	Clients        []Client
	Trainings      []TrainingModule
	Quotes         []Quote
	Invoices       []Invoice
	Sessions       []Session
	Certifications []Certification
	Settings       CompanySettings
	Sequences      []SequenceFloor
}

// SequenceFloors collects, for every prefix and year, the highest sequence used by
// the numbers of the given quotes and invoices.
func SequenceFloors(quotes []Quote, invoices []Invoice) []SequenceFloor {
	type key struct {
		prefix string
		year   int
	}
	highest := map[key]int64{}
	var order []key
	note := func(number string) {
		prefix, year, seq, ok := ParseNumber(number)
		if !ok {
			return
		}
		k := key{prefix, year}
		cur, seen := highest[k]
		if !seen {
			order = append(order, k)
		}
		if !seen || seq > cur {
			highest[k] = seq
		}
	}
	for _, q := range quotes {
		note(q.Number)
	}
	for _, inv := range invoices {
		note(inv.Number)
	}
	floors := make([]SequenceFloor, 0, len(order))
	for _, k := range order {
		floors = append(floors, SequenceFloor{Prefix: k.prefix, Year: k.year, Value: highest[k]})
	}
	return floors
}
