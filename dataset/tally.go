package dataset

import (
	"math"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

/*
Tally counts occurrences of class labels remembering the order in which
each label was first seen.
*/
type Tally struct {
	counts *linkedhashmap.Map
	total  int
}

/*
NewTally takes a slice of rows and returns a Tally with the count of
each of their labels.
*/
func NewTally(rows []Row) *Tally {
	t := &Tally{counts: linkedhashmap.New()}
	for _, r := range rows {
		t.Add(r.Label())
	}
	return t
}

// Add increments the count for the given label.
func (t *Tally) Add(label string) {
	t.counts.Put(label, t.Count(label)+1)
	t.total++
}

// Count returns the number of times the label was added.
func (t *Tally) Count(label string) int {
	c, ok := t.counts.Get(label)
	if !ok {
		return 0
	}
	return c.(int)
}

// Labels returns the distinct labels in first-seen order.
func (t *Tally) Labels() []string {
	keys := t.counts.Keys()
	result := make([]string, len(keys))
	for i, k := range keys {
		result[i] = k.(string)
	}
	return result
}

// Len returns the number of distinct labels.
func (t *Tally) Len() int {
	return t.counts.Size()
}

// Total returns the number of labels added.
func (t *Tally) Total() int {
	return t.total
}

/*
Majority returns the label with the highest count. When several labels
share the highest count, the one seen first wins. An empty tally returns
the empty string.
*/
func (t *Tally) Majority() string {
	var label string
	best := 0
	it := t.counts.Iterator()
	for it.Next() {
		if c := it.Value().(int); c > best {
			best = c
			label = it.Key().(string)
		}
	}
	return label
}

/*
Entropy returns the entropy in bits of the tallied label distribution,
or 0.0 if nothing was tallied.
*/
func (t *Tally) Entropy() float64 {
	var result float64
	if t.total == 0 {
		return result
	}
	total := float64(t.total)
	it := t.counts.Iterator()
	for it.Next() {
		p := float64(it.Value().(int)) / total
		if p > 0 {
			result -= p * math.Log2(p)
		}
	}
	return result
}
