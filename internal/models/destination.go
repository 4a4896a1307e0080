package models

// Destination is a drop-off target from the food bank catalog. ID is the
// value sent back when booking, Label is what the user picks from.
type Destination struct {
	ID    string `json:"name"`
	Label string `json:"text"`
}

// DisplayLabel returns the label, falling back to the ID when the catalog
// entry has no text.
func (d Destination) DisplayLabel() string {
	if d.Label == "" {
		return d.ID
	}
	return d.Label
}

// FindDestination returns the catalog entry with the given ID
func FindDestination(catalog []Destination, id string) (Destination, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Destination{}, false
}
