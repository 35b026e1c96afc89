package dataset

import (
	"fmt"

	"github.com/saskaZs/decision-tree/feature"
)

/*
Dataset represents an ordered collection of rows of equal width sharing
one set of Headers.
*/
type Dataset struct {
	Headers Headers
	Rows    []Row
}

// New takes headers and rows and returns a dataset built with them.
func New(headers Headers, rows []Row) *Dataset {
	return &Dataset{Headers: headers, Rows: rows}
}

// Count returns the number of rows in the dataset.
func (d *Dataset) Count() int {
	return len(d.Rows)
}

// Width returns the number of columns, target included.
func (d *Dataset) Width() int {
	return len(d.Headers)
}

/*
Validate returns an error if the dataset has no target column or if
any of its rows does not have as many values as there are headers.
*/
func (d *Dataset) Validate() error {
	if len(d.Headers) == 0 {
		return fmt.Errorf("dataset has no headers")
	}
	for i, r := range d.Rows {
		if len(r) != len(d.Headers) {
			return fmt.Errorf("row %d has %d values, expected %d", i+1, len(r), len(d.Headers))
		}
	}
	return nil
}

/*
Sample takes a row index and returns the feature values of that row as
an observation, leaving out the label.
*/
func (d *Dataset) Sample(i int) feature.Observation {
	o := make(feature.Observation, len(d.Headers)-1)
	for j, name := range d.Headers.Features() {
		o[name] = d.Rows[i][j]
	}
	return o
}

/*
Entropy takes a slice of rows and returns the entropy in bits of their
label distribution: -Σ p·log2(p) over the proportion p of each distinct
label. The entropy of no rows is 0.0.
*/
func Entropy(rows []Row) float64 {
	if len(rows) == 0 {
		return 0.0
	}
	return NewTally(rows).Entropy()
}
