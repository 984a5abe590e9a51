package status

import (
	"github.com/dkoosis/innostat/pkg/capture"
)

// Slot is one named unit of extracted state. A slot with no values is absent.
type Slot struct {
	Name        string      `json:"name"`
	Cardinality Cardinality `json:"cardinality"`
	Values      []string    `json:"values,omitempty"`
}

// Present reports whether the slot's rule matched.
func (s Slot) Present() bool {
	return len(s.Values) > 0
}

// Catalog holds every slot after one extraction pass. It is built fresh by
// Extract and never modified afterwards; accessors return copies.
type Catalog struct {
	origin string
	slots  []Slot
	index  map[string]int
}

func newCatalog(origin string) *Catalog {
	c := &Catalog{
		origin: origin,
		slots:  make([]Slot, len(rules)),
		index:  make(map[string]int, len(rules)),
	}
	for i, r := range rules {
		c.slots[i] = Slot{Name: r.Name, Cardinality: r.Cardinality}
		c.index[r.Name] = i
	}
	return c
}

// Extract applies every rule to the capture's joined text.
func Extract(c capture.Capture) *Catalog {
	cat := newCatalog(c.Origin)
	cat.fill(c.Text())
	return cat
}

// ExtractText applies every rule to a text blob that is already normalized.
func ExtractText(text string) *Catalog {
	cat := newCatalog("")
	cat.fill(text)
	return cat
}

func (c *Catalog) fill(text string) {
	for i, r := range rules {
		if values, ok := r.Apply(text); ok {
			c.slots[i].Values = values
		}
	}
}

// Origin is the label of the capture the catalog was extracted from.
func (c *Catalog) Origin() string {
	return c.origin
}

// Slot returns a copy of the named slot.
func (c *Catalog) Slot(name string) (Slot, bool) {
	i, ok := c.index[name]
	if !ok {
		return Slot{}, false
	}
	s := c.slots[i]
	s.Values = append([]string(nil), s.Values...)
	return s, true
}

// Slots returns copies of all slots in rule order, present or not.
func (c *Catalog) Slots() []Slot {
	out := make([]Slot, 0, len(c.slots))
	for _, s := range c.slots {
		s.Values = append([]string(nil), s.Values...)
		out = append(out, s)
	}
	return out
}

// Names returns slot names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.slots))
	for i, s := range c.slots {
		names[i] = s.Name
	}
	return names
}

// Present reports whether the named slot holds a value.
func (c *Catalog) Present(name string) bool {
	i, ok := c.index[name]
	return ok && c.slots[i].Present()
}

// Value returns the value of a single slot.
func (c *Catalog) Value(name string) (string, bool) {
	i, ok := c.index[name]
	if !ok || !c.slots[i].Present() {
		return "", false
	}
	return c.slots[i].Values[0], true
}

// List returns the values of a list slot in order of appearance.
func (c *Catalog) List(name string) []string {
	i, ok := c.index[name]
	if !ok {
		return nil
	}
	return append([]string(nil), c.slots[i].Values...)
}

// Tuple returns the grouped record of a tuple slot.
func (c *Catalog) Tuple(name string) ([]string, bool) {
	values := c.List(name)
	return values, len(values) > 0
}

// Rows returns the inserted, updated, deleted and read counts.
func (c *Catalog) Rows() (RowCounts, bool) {
	t, ok := c.Tuple(SlotRows)
	if !ok || len(t) != 4 {
		return RowCounts{}, false
	}
	return RowCounts{Inserted: t[0], Updated: t[1], Deleted: t[2], Read: t[3]}, true
}

// RowCounts is the rows tuple with named fields. Counts stay textual.
type RowCounts struct {
	Inserted string `json:"inserted"`
	Updated  string `json:"updated"`
	Deleted  string `json:"deleted"`
	Read     string `json:"read"`
}

// MatchCounts returns the number of stored values per present slot.
func (c *Catalog) MatchCounts() map[string]int {
	counts := make(map[string]int)
	for _, s := range c.slots {
		if s.Present() {
			counts[s.Name] = len(s.Values)
		}
	}
	return counts
}
