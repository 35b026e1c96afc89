package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/saskaZs/decision-tree/feature"
	"github.com/saskaZs/decision-tree/feature/inputobservation"
	"github.com/saskaZs/decision-tree/feature/json"
	"github.com/saskaZs/decision-tree/feature/yaml"
	"github.com/saskaZs/decision-tree/tree"
	"github.com/spf13/cobra"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	inputConfig
	observationsInput string
	values            []string
	interactive       bool
	undefinedValue    string
}

type promptValueRequester struct {
	w              io.Writer
	undefinedValue string
}

// demoObservations are classified when no observation is given.
var demoObservations = []feature.Observation{
	{"outlook": "Overcast", "temp": "Mild", "humidity": "Normal", "wind": "Weak"},
	{"outlook": "Sunny", "temp": "Hot", "humidity": "High", "wind": "Weak"},
	{"outlook": "Rain", "temp": "Cool", "humidity": "Normal", "wind": "Strong"},
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify observations with a tree grown from a set of data",
		Long: `Grow a decision tree from a set of data and use it to predict the last column for observations
read from a YML or JSON file and/or given as name=value pairs, or answering questions about
the features the tree asks for. Without observations, three play-tennis days are classified.
Observations the tree has no path for are predicted as Unknown.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			observations, err := config.observations()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := config.grow(cmd.Context(), &config.inputConfig)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			out := cmd.OutOrStdout()
			if config.interactive {
				o, prediction, err := config.classifyInput(cmd.InOrStdin(), out, t)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				_, err = fmt.Fprintf(out, "Input: %v\nPrediction: %s\n\n", o, prediction)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
			}
			for _, o := range observations {
				_, err = fmt.Fprintf(out, "Input: %v\nPrediction: %s\n\n", o, tree.Classify(o, t))
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
			}
		},
	}
	config.addFlags(cmd, sourceUsage+" with data to grow the tree from (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.observationsInput), "observations", "o", "", "path to a YML or JSON (.json) file with a list of observations to classify")
	cmd.PersistentFlags().StringArrayVar(&(config.values), "value", nil, "feature value of a single observation to classify as name=value (repeatable)")
	cmd.PersistentFlags().BoolVar(&(config.interactive), "interactive", false, "classify a single observation answering questions about its features on STDIN")
	cmd.PersistentFlags().StringVarP(&(config.undefinedValue), "undefined-value", "u", "?", "value to input to leave a feature undefined when answering questions")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.interactive && (ccc.observationsInput != "" || len(ccc.values) > 0) {
		return fmt.Errorf("interactive flag cannot be combined with observations or value flags")
	}
	if ccc.interactive && ccc.dataInput == "" {
		return fmt.Errorf("input flag is required to answer questions on STDIN")
	}
	return ccc.inputConfig.Validate()
}

func (ccc *classifyCmdConfig) observations() ([]feature.Observation, error) {
	var observations []feature.Observation
	if ccc.interactive {
		return nil, nil
	}
	if ccc.observationsInput != "" {
		ccc.Logf("Reading observations from %s...", ccc.observationsInput)
		readObservations := yaml.ReadObservationsFromFile
		if strings.EqualFold(filepath.Ext(ccc.observationsInput), ".json") {
			readObservations = json.ReadObservationsFromFile
		}
		read, err := readObservations(ccc.observationsInput)
		if err != nil {
			return nil, err
		}
		observations = append(observations, read...)
	}
	if len(ccc.values) > 0 {
		o, err := feature.ParseObservation(ccc.values)
		if err != nil {
			return nil, err
		}
		observations = append(observations, o)
	}
	if len(observations) == 0 {
		ccc.Logf("No observations given, classifying demo observations")
		return demoObservations, nil
	}
	return observations, nil
}

/*
classifyInput classifies an observation whose values are read from r,
asking on w for the value of every feature the tree needs to know about.
It returns the values obtained along with the prediction.
*/
func (ccc *classifyCmdConfig) classifyInput(r io.Reader, w io.Writer, t tree.Tree) (feature.Observation, string, error) {
	reader := inputobservation.New(r, promptValueRequester{w, ccc.undefinedValue}, ccc.undefinedValue)
	prediction, err := tree.ClassifyFunc(t, reader.ValueFor)
	if err != nil {
		return nil, "", err
	}
	return reader.Observation(), prediction, nil
}

func (pvr promptValueRequester) RequestValueFor(name string, values []string) error {
	_, err := fmt.Fprintf(pvr.w, "Please provide the observation's %s:\n(valid values are %v or %s if undefined)\n", name, values, pvr.undefinedValue)
	return err
}

func (pvr promptValueRequester) RejectValueFor(name, value string, values []string) error {
	_, err := fmt.Fprintf(pvr.w, "%s is not a valid value for the observation's %s. Please provide one of %v or %s if undefined.\n", value, name, values, pvr.undefinedValue)
	return err
}
