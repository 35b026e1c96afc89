/*
Package feature defines the observations a decision tree is asked to
classify and the criteria its branches impose on them.
*/
package feature

import (
	"fmt"
	"sort"
	"strings"
)

/*
Observation represents an item to classify as a mapping of feature names
to their categorical values. Names and values are compared exactly, case
included.
*/
type Observation map[string]string

/*
ValueFor takes a feature name and returns the value the observation has
for it and whether it has one at all.
*/
func (o Observation) ValueFor(name string) (string, bool) {
	v, ok := o[name]
	return v, ok
}

/*
ParseObservation takes a slice of strings in the form name=value and
returns an observation with those feature values or an error if any of
them is malformed. Only the first '=' separates the name from the value.
*/
func ParseObservation(pairs []string) (Observation, error) {
	o := make(Observation, len(pairs))
	for _, p := range pairs {
		i := strings.Index(p, "=")
		if i < 0 {
			return nil, fmt.Errorf("feature value %q is not in the form name=value", p)
		}
		name := p[:i]
		if name == "" {
			return nil, fmt.Errorf("feature value %q has no feature name", p)
		}
		o[name] = p[i+1:]
	}
	return o, nil
}

func (o Observation) String() string {
	names := make([]string, 0, len(o))
	for n := range o {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s: %s", n, o[n])
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
