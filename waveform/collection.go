package waveform

// Collection is an ordered, mutable set of records for one station/event.
// Processing stages may remove members that fail quality checks but never add
// any. The zero value is ready to use.
//
// Collection is not safe for concurrent mutation; callers own serialization.
type Collection struct {
	records []*Record
}

// NewCollection returns a collection holding the given records in order.
func NewCollection(records ...*Record) *Collection {
	c := &Collection{records: make([]*Record, len(records))}
	copy(c.records, records)

	return c
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.records)
}

// Records returns a snapshot of the current members. Stages iterate the
// snapshot while mutating the live collection, so removal during a pass never
// invalidates iteration.
func (c *Collection) Records() []*Record {
	out := make([]*Record, len(c.records))
	copy(out, c.records)

	return out
}

// Remove removes rec by identity, preserving order of the remaining records.
// It reports whether rec was a member.
func (c *Collection) Remove(rec *Record) bool {
	for i, r := range c.records {
		if r == rec {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return true
		}
	}

	return false
}
