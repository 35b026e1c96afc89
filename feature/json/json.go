/*
Package json provides methods to parse feature.Observation lists from
JSON documents.
*/
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/saskaZs/decision-tree/feature"
)

/*
ReadObservations takes a slice of bytes with observations in JSON and
returns a slice of observations parsed from it or an error.
The JSON is expected to be an object containing an observations
property holding a list of objects, each with a property per feature.
Strings are taken as they are, numbers as written and booleans as
"true" or "false". Any other value is an error.
*/
func ReadObservations(data []byte) ([]feature.Observation, error) {
	doc := struct {
		Observations []map[string]interface{} `json:"observations"`
	}{}
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()
	err := d.Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("parsing json observations: %v", err)
	}
	if doc.Observations == nil {
		return nil, fmt.Errorf("document has no observations")
	}
	observations := make([]feature.Observation, 0, len(doc.Observations))
	for i, jo := range doc.Observations {
		o := make(feature.Observation, len(jo))
		for name, value := range jo {
			switch v := value.(type) {
			case string:
				o[name] = v
			case json.Number:
				o[name] = v.String()
			case bool:
				o[name] = strconv.FormatBool(v)
			default:
				return nil, fmt.Errorf("observation %d: value for %s is not a string, number or boolean", i+1, name)
			}
		}
		observations = append(observations, o)
	}
	return observations, nil
}

/*
ReadObservationsFromFile takes a filepath string, reads its contents and
uses ReadObservations to parse it and return a slice of observations or
an error.
*/
func ReadObservationsFromFile(filepath string) ([]feature.Observation, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading observations json file %s: %v", filepath, err)
	}
	observations, err := ReadObservations(data)
	if err != nil {
		err = fmt.Errorf("parsing observations json file %s: %v", filepath, err)
	}
	return observations, err
}
