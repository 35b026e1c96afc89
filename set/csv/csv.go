/*
Package csv reads sets of training data from CSV streams and writes
them back.

The first record of a stream holds the column names and every other
record a row. The first column of every record is an identifier for the
row (a day, a sample number...) which is not part of the data: it is
dropped when reading and generated when writing.
*/
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/saskaZs/decision-tree/dataset"
	"github.com/saskaZs/decision-tree/set"
)

/*
Writer writes rows as CSV records, each prefixed with an identifier
column holding its 1-based position.
*/
type Writer struct {
	count int
	w     *csv.Writer
}

/*
ReadSet takes an io.Reader for a CSV stream and returns the dataset
parsed from it or an error.

Values are read as strings with surrounding whitespace trimmed and no
other conversion. Records are not checked to have as many values as
the header.
*/
func ReadSet(reader io.Reader) (*dataset.Dataset, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return nil, set.ErrEmptySource
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	headers := dataset.Headers(trim(set.DropIdentifier(header)))
	rows := []dataset.Row{}
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %v", l, err)
		}
		rows = append(rows, dataset.Row(trim(set.DropIdentifier(record))))
	}
	return dataset.New(headers, rows), nil
}

/*
ReadSetFromFilePath takes a filepath string, opens the file to which it
points and uses ReadSet to return the dataset in it or an error. If the
filepath is "" os.Stdin is read instead. If the file does not exist the
returned error wraps set.ErrSourceNotFound.
*/
func ReadSetFromFilePath(filepath string) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("dataset file %s: %w", filepath, set.ErrSourceNotFound)
			}
			return nil, fmt.Errorf("opening dataset file %s: %v", filepath, err)
		}
		defer f.Close()
	}
	d, err := ReadSet(f)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return d, nil
}

/*
NewWriter takes an io.Writer and the headers of the rows to write and
returns a Writer that will write them on the io.Writer, after writing
the header record.
*/
func NewWriter(writer io.Writer, headers dataset.Headers) (*Writer, error) {
	w := csv.NewWriter(writer)
	record := append([]string{"id"}, headers...)
	err := w.Write(record)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &Writer{w: w}, nil
}

// Write writes the given rows and returns how many were written.
func (cw *Writer) Write(rows []dataset.Row) (int, error) {
	for n, r := range rows {
		record := append([]string{strconv.Itoa(cw.count + 1)}, r...)
		err := cw.w.Write(record)
		if err != nil {
			return n, fmt.Errorf("writing CSV row %d: %v", cw.count+1, err)
		}
		cw.count++
	}
	return len(rows), nil
}

// Count returns the total number of rows written.
func (cw *Writer) Count() int {
	return cw.count
}

// Flush ensures every written row reaches the underlying io.Writer.
func (cw *Writer) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

/*
WriteSet takes an io.Writer and a dataset and dumps the dataset on the
writer in CSV format.
*/
func WriteSet(writer io.Writer, d *dataset.Dataset) error {
	cw, err := NewWriter(writer, d.Headers)
	if err != nil {
		return err
	}
	_, err = cw.Write(d.Rows)
	if err != nil {
		return err
	}
	return cw.Flush()
}

func trim(record []string) []string {
	result := make([]string, len(record))
	for i, v := range record {
		result[i] = strings.TrimSpace(v)
	}
	return result
}
