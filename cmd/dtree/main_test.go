package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var playTennis = filepath.Join("..", "..", "testdata", "play_tennis.csv")

func run(t *testing.T, args ...string) string {
	t.Helper()
	return runWithInput(t, "", args...)
}

func runWithInput(t *testing.T, input string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := cliParser()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error running %v: %v", args, err)
	}
	return out.String()
}

func TestVersion(t *testing.T) {
	if out := run(t, "version"); out != "dtree v0.1.0\n" {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestGrow(t *testing.T) {
	out := run(t, "grow", "-i", playTennis)
	if !strings.HasPrefix(out, "[outlook]\n|__Sunny\n|  [humidity]\n") {
		t.Fatalf("unexpected tree:\n%s", out)
	}
}

func TestGrowRules(t *testing.T) {
	out := run(t, "grow", "-i", playTennis, "--rules")
	expected := `IF outlook is Sunny AND humidity is High THEN No
IF outlook is Sunny AND humidity is Normal THEN Yes
IF outlook is Overcast THEN Yes
IF outlook is Rain AND wind is Weak THEN Yes
IF outlook is Rain AND wind is Strong THEN No
`
	if out != expected {
		t.Fatalf("expected rules\n%s\ngot\n%s", expected, out)
	}
}

func TestClassifyDemoObservations(t *testing.T) {
	out := run(t, "classify", "-i", playTennis)
	var predictions []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Prediction: ") {
			predictions = append(predictions, strings.TrimPrefix(line, "Prediction: "))
		}
	}
	expected := []string{"Yes", "No", "No"}
	if strings.Join(predictions, ",") != strings.Join(expected, ",") {
		t.Fatalf("expected predictions %v, got %v", expected, predictions)
	}
}

func TestClassifyValues(t *testing.T) {
	out := run(t, "classify", "-i", playTennis, "--value", "outlook=Foggy", "--value", "wind=Weak")
	expected := "Input: {outlook: Foggy, wind: Weak}\nPrediction: Unknown\n\n"
	if out != expected {
		t.Fatalf("expected %q, got %q", expected, out)
	}
}

func TestClassifyObservationsFile(t *testing.T) {
	observations := filepath.Join("..", "..", "testdata", "observations.yml")
	out := run(t, "classify", "-i", playTennis, "-o", observations)
	if c := strings.Count(out, "Prediction: "); c != 3 {
		t.Fatalf("expected 3 predictions, got %d in\n%s", c, out)
	}
	if !strings.Contains(out, "Input: {humidity: Normal, outlook: Foggy, temp: Cool, wind: Strong}\nPrediction: Unknown\n") {
		t.Fatalf("expected Unknown prediction for Foggy outlook, got\n%s", out)
	}
}

func TestClassifyJSONObservationsFile(t *testing.T) {
	observations := filepath.Join(t.TempDir(), "observations.json")
	err := os.WriteFile(observations, []byte(`{"observations": [{"outlook": "Rain", "wind": "Weak"}]}`), 0644)
	if err != nil {
		t.Fatalf("writing %s: %v", observations, err)
	}
	out := run(t, "classify", "-i", playTennis, "-o", observations)
	expected := "Input: {outlook: Rain, wind: Weak}\nPrediction: Yes\n\n"
	if out != expected {
		t.Fatalf("expected %q, got %q", expected, out)
	}
}

func TestClassifyInteractive(t *testing.T) {
	out := runWithInput(t, "Foggy\nSunny\nNormal\n", "classify", "-i", playTennis, "--interactive")
	if c := strings.Count(out, "Please provide the observation's "); c != 2 {
		t.Fatalf("expected 2 questions, got %d in\n%s", c, out)
	}
	if !strings.Contains(out, "Foggy is not a valid value for the observation's outlook.") {
		t.Fatalf("expected Foggy to be rejected, got\n%s", out)
	}
	if !strings.HasSuffix(out, "Input: {humidity: Normal, outlook: Sunny}\nPrediction: Yes\n\n") {
		t.Fatalf("unexpected output\n%s", out)
	}
}

func TestClassifyInteractiveUndefined(t *testing.T) {
	out := runWithInput(t, "?\n", "classify", "-i", playTennis, "--interactive")
	if !strings.HasSuffix(out, "Input: {}\nPrediction: Unknown\n\n") {
		t.Fatalf("unexpected output\n%s", out)
	}
}

func TestSetToSQLite3(t *testing.T) {
	db := filepath.Join(t.TempDir(), "samples.db")
	if out := run(t, "set", "-i", playTennis, "-o", db); out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
	out := run(t, "set", "-i", db)
	csv, err := os.ReadFile(playTennis)
	if err != nil {
		t.Fatalf("reading %s: %v", playTennis, err)
	}
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	if c := strings.Count(out, "\n"); c != len(lines) {
		t.Fatalf("expected %d lines, got %d in\n%s", len(lines), c, out)
	}
	if !strings.HasPrefix(out, "id,outlook,temp,humidity,wind,play\n1,Sunny,Hot,High,Weak,No\n") {
		t.Fatalf("unexpected set dump:\n%s", out)
	}
	if grown := run(t, "grow", "-i", db); grown != run(t, "grow", "-i", playTennis) {
		t.Fatalf("expected the same tree from both sources, got\n%s", grown)
	}
}

func TestSourceKind(t *testing.T) {
	testCases := map[string]string{
		"":                                csvSource,
		"samples.csv":                     csvSource,
		"samples.db":                      sqlite3Source,
		"postgres://localhost/dtree":      postgresSource,
		"postgresql://user@localhost/db":  postgresSource,
		"mongodb://localhost:27017/dtree": mongoSource,
	}
	for location, expected := range testCases {
		if got := sourceKind(location); got != expected {
			t.Errorf("expected %s for %q, got %s", expected, location, got)
		}
	}
}
