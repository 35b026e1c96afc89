/*
Package inputobservation provides an observation whose feature values are
read from an io.Reader as they are needed.
*/
package inputobservation

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/saskaZs/decision-tree/feature"
)

/*
ValueRequester represents a way to ask for feature values and reject
the given values.
*/
type ValueRequester interface {
	RequestValueFor(feature string, values []string) error
	RejectValueFor(feature, value string, values []string) error
}

/*
Reader obtains the values of an observation from lines read from an
io.Reader, requesting each value with a ValueRequester before reading it.
*/
type Reader struct {
	observation    feature.Observation
	undefined      map[string]bool
	undefinedValue string
	scanner        *bufio.Scanner
	requester      ValueRequester
}

/*
New takes an io.Reader, a ValueRequester and an undefinedValue coding
string and returns a Reader.

The parsing expects each value to be presented ending with the '\n'
character, that is in new lines, with surrounding whitespace ignored.
The undefinedValue string on its own line leaves the value undefined.
*/
func New(r io.Reader, requester ValueRequester, undefinedValue string) *Reader {
	return &Reader{
		observation:    make(feature.Observation),
		undefined:      make(map[string]bool),
		undefinedValue: undefinedValue,
		scanner:        bufio.NewScanner(r),
		requester:      requester,
	}
}

/*
ValueFor takes a feature name and the values accepted for it and returns
the value read for the feature and whether it was defined. Lines with
values that are not accepted are rejected with the ValueRequester's
RejectValueFor method and another line is read. An empty slice of
values accepts any value. Values are requested only once per feature.

It satisfies tree.ValueFunc.
*/
func (r *Reader) ValueFor(name string, values []string) (string, bool, error) {
	if v, ok := r.observation[name]; ok {
		return v, true, nil
	}
	if r.undefined[name] {
		return "", false, nil
	}
	err := r.requester.RequestValueFor(name, values)
	if err != nil {
		return "", false, err
	}
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == r.undefinedValue {
			r.undefined[name] = true
			return "", false, nil
		}
		if accepted(line, values) {
			r.observation[name] = line
			return line, true, nil
		}
		err = r.requester.RejectValueFor(name, line, values)
		if err != nil {
			return "", false, err
		}
	}
	err = r.scanner.Err()
	if err != nil {
		return "", false, err
	}
	return "", false, fmt.Errorf("EOF when requesting value for %s", name)
}

// Observation returns the feature values defined so far.
func (r *Reader) Observation() feature.Observation {
	result := make(feature.Observation, len(r.observation))
	for k, v := range r.observation {
		result[k] = v
	}
	return result
}

func accepted(value string, values []string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
