package csv

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/saskaZs/decision-tree/dataset"
	"github.com/saskaZs/decision-tree/set"
)

func TestReadSet(t *testing.T) {
	input := "day,outlook, wind ,play\nD1,Sunny, Weak,No\nD2, Rain,Strong ,Yes\n"
	d, err := ReadSet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectedHeaders := dataset.Headers{"outlook", "wind", "play"}
	if !reflect.DeepEqual(d.Headers, expectedHeaders) {
		t.Fatalf("expected headers %v, got %v", expectedHeaders, d.Headers)
	}
	expectedRows := []dataset.Row{{"Sunny", "Weak", "No"}, {"Rain", "Strong", "Yes"}}
	if !reflect.DeepEqual(d.Rows, expectedRows) {
		t.Fatalf("expected rows %v, got %v", expectedRows, d.Rows)
	}
}

func TestReadSetHeaderOnly(t *testing.T) {
	d, err := ReadSet(strings.NewReader("day,outlook,play\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Count() != 0 {
		t.Fatalf("expected no rows, got %d", d.Count())
	}
}

func TestReadSetEmpty(t *testing.T) {
	_, err := ReadSet(strings.NewReader(""))
	if err != set.ErrEmptySource {
		t.Fatalf("expected %v, got %v", set.ErrEmptySource, err)
	}
}

func TestReadSetFromFilePath(t *testing.T) {
	d, err := ReadSetFromFilePath(filepath.Join("..", "..", "testdata", "play_tennis.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Count() != 14 || d.Width() != 5 {
		t.Fatalf("expected 14 rows of width 5, got %d rows of width %d", d.Count(), d.Width())
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected invalid set: %v", err)
	}
	_, err = ReadSetFromFilePath(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, set.ErrSourceNotFound) {
		t.Fatalf("expected error wrapping %v, got %v", set.ErrSourceNotFound, err)
	}
}

func TestWriteSet(t *testing.T) {
	d := dataset.New(dataset.Headers{"outlook", "play"}, []dataset.Row{{"Sunny", "No"}, {"Rain", "Yes"}})
	var buf bytes.Buffer
	err := WriteSet(&buf, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "id,outlook,play\n1,Sunny,No\n2,Rain,Yes\n"
	if buf.String() != expected {
		t.Fatalf("expected %q, got %q", expected, buf.String())
	}
	read, err := ReadSet(&buf)
	if err != nil {
		t.Fatalf("unexpected error reading written set: %v", err)
	}
	if !reflect.DeepEqual(read, d) {
		t.Fatalf("expected %v, got %v", d, read)
	}
}
