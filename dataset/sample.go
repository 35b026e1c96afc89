package dataset

/*
Row represents a training sample as an ordered sequence of categorical
values. Every value but the last one is a feature value aligned with the
Headers of the dataset it belongs to; the last value is the class label.
*/
type Row []string

/*
Headers holds the names of the features of a dataset in column order,
followed by the name of the target feature.
*/
type Headers []string

// Label returns the class label of the row.
func (r Row) Label() string {
	return r[len(r)-1]
}

// Width returns the number of columns in the row, label included.
func (r Row) Width() int {
	return len(r)
}

/*
Without takes a column index and returns a new row with every value of
the receiver except the one at that index, in the same relative order.
The receiver is never modified.
*/
func (r Row) Without(i int) Row {
	return Row(without(r, i))
}

/*
Without takes a column index and returns a reduced copy of the headers
lacking the name at that index. The receiver is never modified.
*/
func (h Headers) Without(i int) Headers {
	return Headers(without(h, i))
}

// Target returns the name of the target feature.
func (h Headers) Target() string {
	return h[len(h)-1]
}

// Features returns the names of the features, target excluded.
func (h Headers) Features() []string {
	return h[:len(h)-1]
}

// Index returns the column index for the given name or -1 if absent.
func (h Headers) Index(name string) int {
	for i, n := range h {
		if n == name {
			return i
		}
	}
	return -1
}

func without(values []string, i int) []string {
	result := make([]string, 0, len(values)-1)
	result = append(result, values[:i]...)
	return append(result, values[i+1:]...)
}
