package inventory

// Source distinguishes where an inventory entry was catalogued.
type Source string

const (
	LocalSource   Source = "local"
	GeneralSource Source = "general"
)

// Entry is a single row of the organization's software inventory.
type Entry struct {
	ID     string `json:"id"`
	Vendor string `json:"vendor"`
	Name   string `json:"name"`
	Source Source `json:"source"`
}

// Reference is the text matched against vulnerability descriptions: the vendor and name joined by a space.
func (e Entry) Reference() string {
	return e.Vendor + " " + e.Name
}

// Provider yields the inventory snapshot used for a batch. The returned slice must not be modified while the
// batch runs.
type Provider interface {
	Entries() []Entry
}

// Inventory is an in-memory Provider.
type Inventory []Entry

func (i Inventory) Entries() []Entry {
	return i
}

// BySource returns the number of entries per source tag.
func (i Inventory) BySource() map[Source]int {
	counts := make(map[Source]int)
	for _, e := range i {
		counts[e.Source]++
	}
	return counts
}
