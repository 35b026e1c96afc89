/*
Package yaml provides methods to parse feature.Observation lists from
YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/saskaZs/decision-tree/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadObservations takes a slice of bytes with observations in YML and
returns a slice of observations parsed from it or an error.
The YML is expected to be an object containing an observations property.
The value for this should be a list of objects, each with a property per
feature holding the observed value. Scalars are kept as written, so
unquoted values such as Yes or 85 are read as the strings "Yes" and "85".
*/
func ReadObservations(data []byte) ([]feature.Observation, error) {
	doc := struct {
		Observations []map[string]string `yaml:"observations"`
	}{}
	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("parsing yml observations: %v", err)
	}
	if doc.Observations == nil {
		return nil, fmt.Errorf("document has no observations")
	}
	observations := make([]feature.Observation, 0, len(doc.Observations))
	for _, o := range doc.Observations {
		observations = append(observations, feature.Observation(o))
	}
	return observations, nil
}

/*
ReadObservationsFromFile takes a filepath string, reads its contents and
uses ReadObservations to parse it and return a slice of observations or
an error. If the file indicated by the filepath cannot be opened for
reading an error will be returned.
*/
func ReadObservationsFromFile(filepath string) ([]feature.Observation, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading observations yml file %s: %v", filepath, err)
	}
	observations, err := ReadObservations(data)
	if err != nil {
		err = fmt.Errorf("parsing observations yml file %s: %v", filepath, err)
	}
	return observations, err
}
