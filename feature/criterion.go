package feature

import "fmt"

/*
Criterion represents a constraint on a feature: the value an observation
must have for it to follow a branch of a tree.
*/
type Criterion struct {
	Feature string
	Value   string
}

/*
SatisfiedBy receives an observation as parameter and returns a boolean
indicating if the observation satisfies the criterion. Specifically, it
returns false if the observation does not define a value for the
feature, true if that value equals the value on the criterion; and false
otherwise.
*/
func (c Criterion) SatisfiedBy(o Observation) bool {
	v, ok := o.ValueFor(c.Feature)
	if !ok {
		return false
	}
	return v == c.Value
}

func (c Criterion) String() string {
	return fmt.Sprintf("%s is %s", c.Feature, c.Value)
}
