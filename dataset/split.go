package dataset

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

/*
SplitMap holds the groups of rows resulting from splitting a slice of
rows on a feature column, keyed by the value each group has for it.
Groups keep the order in which their values were first seen.
*/
type SplitMap struct {
	groups *linkedhashmap.Map
	count  int
}

/*
Split takes a slice of rows and a feature column index and returns a
SplitMap grouping the rows by their value at that index. Every grouped
row is a reduced copy of the original without the split column.

The index must be lower than the width of every row.
*/
func Split(rows []Row, index int) *SplitMap {
	sm := &SplitMap{groups: linkedhashmap.New()}
	for _, r := range rows {
		value := r[index]
		group, _ := sm.Group(value)
		sm.groups.Put(value, append(group, r.Without(index)))
		sm.count++
	}
	return sm
}

// Group returns the rows for the given value and whether there are any.
func (sm *SplitMap) Group(value string) ([]Row, bool) {
	g, ok := sm.groups.Get(value)
	if !ok {
		return nil, false
	}
	return g.([]Row), true
}

// Values returns the group keys in first-seen order.
func (sm *SplitMap) Values() []string {
	keys := sm.groups.Keys()
	result := make([]string, len(keys))
	for i, k := range keys {
		result[i] = k.(string)
	}
	return result
}

// Len returns the number of groups.
func (sm *SplitMap) Len() int {
	return sm.groups.Size()
}

// Count returns the number of rows across all groups.
func (sm *SplitMap) Count() int {
	return sm.count
}

// Each calls f with every group in first-seen order.
func (sm *SplitMap) Each(f func(value string, rows []Row)) {
	it := sm.groups.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().([]Row))
	}
}
