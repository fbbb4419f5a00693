package model

// Bucket holds the names sharing one (year, set) pair in insertion order.
type Bucket struct {
	names []Key
}

// Append adds a name to the end of the bucket.
func (b *Bucket) Append(name Key) {
	b.names = append(b.names, name)
}

// Names returns a copy of the names in insertion order.
func (b *Bucket) Names() []Key {
	out := make([]Key, len(b.names))
	copy(out, b.names)
	return out
}

// Len returns the number of names in the bucket.
func (b *Bucket) Len() int {
	return len(b.names)
}

// YearGroup maps set keys to buckets for a single year.
type YearGroup struct {
	year Key
	sets map[Key]*Bucket
}

// Year returns the key this group was created for.
func (y *YearGroup) Year() Key {
	return y.year
}

// Set returns the bucket for set, creating an empty one on first use.
func (y *YearGroup) Set(set Key) *Bucket {
	b, ok := y.sets[set]
	if !ok {
		b = &Bucket{}
		y.sets[set] = b
	}
	return b
}

// Lookup returns the bucket for set without creating it.
func (y *YearGroup) Lookup(set Key) (*Bucket, bool) {
	b, ok := y.sets[set]
	return b, ok
}

// Sets returns the set keys of this year in unspecified order.
func (y *YearGroup) Sets() []Key {
	keys := make([]Key, 0, len(y.sets))
	for k := range y.sets {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of names across all sets of this year.
func (y *YearGroup) Len() int {
	n := 0
	for _, b := range y.sets {
		n += b.Len()
	}
	return n
}

// Grouping is the two-level map year -> set -> bucket built from records.
type Grouping struct {
	years map[Key]*YearGroup
}

// NewGrouping returns an empty Grouping.
func NewGrouping() *Grouping {
	return &Grouping{years: make(map[Key]*YearGroup)}
}

// Group builds a Grouping from records, preserving input order inside
// every bucket.
func Group(records []Record) *Grouping {
	g := NewGrouping()
	for _, r := range records {
		g.Add(r)
	}
	return g
}

// Add files the record's name under its (year, set) bucket.
func (g *Grouping) Add(r Record) {
	g.Year(r.Year).Set(r.Set).Append(r.Name)
}

// Year returns the group for year, creating an empty one on first use.
func (g *Grouping) Year(year Key) *YearGroup {
	y, ok := g.years[year]
	if !ok {
		y = &YearGroup{year: year, sets: make(map[Key]*Bucket)}
		g.years[year] = y
	}
	return y
}

// Lookup returns the group for year without creating it.
func (g *Grouping) Lookup(year Key) (*YearGroup, bool) {
	y, ok := g.years[year]
	return y, ok
}

// Years returns the year keys in unspecified order.
func (g *Grouping) Years() []Key {
	keys := make([]Key, 0, len(g.years))
	for k := range g.years {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the total number of names in the grouping.
func (g *Grouping) Len() int {
	n := 0
	for _, y := range g.years {
		n += y.Len()
	}
	return n
}
