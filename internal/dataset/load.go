package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one raw input record before typing: column name to cell text.
// Non-string JSON values are kept as their JSON encoding so CSV and JSON
// inputs flow through the same cell parsers.
type Record map[string]string

// Loader reads one file format into raw records.
type Loader interface {
	CanLoad(filename string) bool
	Load(path string) ([]Record, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

func init() {
	Register(csvLoader{})
	Register(jsonLoader{})
	Register(jsonlLoader{})
}

// LoadRecords selects a loader based on filename and returns raw records.
func LoadRecords(path string) ([]Record, error) {
	for _, l := range registry {
		if l.CanLoad(path) {
			return l.Load(path)
		}
	}
	return nil, fmt.Errorf("unsupported input format: %s (want .csv, .json or .jsonl)", path)
}

// Load reads and parses a transcript file into a typed Dataset.
func Load(path string) (*Dataset, error) {
	records, err := LoadRecords(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(records)
	if err != nil {
		return nil, err
	}
	d.Path = path
	return d, nil
}

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".csv")
}

func (csvLoader) Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var out []Record
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(out)+2, err)
		}
		rec := make(Record, len(header))
		for i, h := range header {
			if i < len(fields) {
				rec[h] = fields[i]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

type jsonLoader struct{}

func (jsonLoader) CanLoad(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".json")
}

func (jsonLoader) Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse json array: %w", err)
	}
	out := make([]Record, 0, len(raw))
	for _, m := range raw {
		out = append(out, recordFromJSON(m))
	}
	return out, nil
}

type jsonlLoader struct{}

func (jsonlLoader) CanLoad(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".jsonl") || strings.HasSuffix(name, ".ndjson")
}

func (jsonlLoader) Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jsonl: %w", err)
	}
	defer f.Close()

	var out []Record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var m map[string]json.RawMessage
		if err := json.Unmarshal([]byte(text), &m); err != nil {
			return nil, fmt.Errorf("parse jsonl line %d: %w", line, err)
		}
		out = append(out, recordFromJSON(m))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan jsonl: %w", err)
	}
	return out, nil
}

// recordFromJSON flattens a JSON object into string cells. Scalar strings
// keep their value; everything else keeps its JSON encoding.
func recordFromJSON(m map[string]json.RawMessage) Record {
	rec := make(Record, len(m))
	for k, v := range m {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			rec[k] = s
			continue
		}
		rec[k] = string(v)
	}
	return rec
}
