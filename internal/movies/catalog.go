package movies

// Catalog maps titles to records while preserving encounter order.
type Catalog struct {
	order   []string
	records map[string]Record
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{records: make(map[string]Record)}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Contains reports whether title is present, by exact match.
func (c *Catalog) Contains(title string) bool {
	if c == nil {
		return false
	}
	_, ok := c.records[title]
	return ok
}

// Get returns the record stored under title.
func (c *Catalog) Get(title string) (Record, bool) {
	if c == nil {
		return Record{}, false
	}
	rec, ok := c.records[title]
	return rec, ok
}

// Put inserts or replaces the record keyed by rec.Title. A replaced record
// keeps its position.
func (c *Catalog) Put(rec Record) {
	if c.records == nil {
		c.records = make(map[string]Record)
	}
	if _, exists := c.records[rec.Title]; !exists {
		c.order = append(c.order, rec.Title)
	}
	c.records[rec.Title] = rec
}

// Remove deletes title and reports whether it was present.
func (c *Catalog) Remove(title string) bool {
	if _, ok := c.records[title]; !ok {
		return false
	}
	delete(c.records, title)
	for i, existing := range c.order {
		if existing == title {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Titles returns the titles in catalog order.
func (c *Catalog) Titles() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Records returns the records in catalog order.
func (c *Catalog) Records() []Record {
	if c == nil {
		return nil
	}
	out := make([]Record, 0, len(c.order))
	for _, title := range c.order {
		out = append(out, c.records[title])
	}
	return out
}
