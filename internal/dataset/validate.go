package dataset

import (
	"sort"
	"strings"

	"github.com/discourselab/speechviz/internal/schema"
)

// ColumnCheck is the validation result for one annotated column.
type ColumnCheck struct {
	Column   string
	Present  bool
	NonNull  int
	Nulls    int
	Coverage float64
	Invalid  []ValueCount
}

// ValidationReport summarizes how well an input file matches the expected
// annotation schema.
type ValidationReport struct {
	Rows       int
	TextColumn string
	Checks     []ColumnCheck
}

// OK reports whether the file has a text column and no invalid values in
// any present column.
func (r *ValidationReport) OK() bool {
	if r.TextColumn == "" {
		return false
	}
	for _, c := range r.Checks {
		if len(c.Invalid) > 0 {
			return false
		}
	}
	return true
}

// Validate checks raw records against the expected annotation vocabulary.
// Absent columns are reported but are not errors; figures skip them.
func Validate(records []Record) *ValidationReport {
	records = expandAnnotations(records)
	columns := collectColumns(records)

	rep := &ValidationReport{Rows: len(records)}
	for _, c := range textColumns {
		if contains(columns, c) {
			rep.TextColumn = c
			break
		}
	}

	checked := make([]string, 0, len(schema.Expected))
	for col := range schema.Expected {
		checked = append(checked, col)
	}
	sort.Strings(checked)

	for _, col := range checked {
		check := ColumnCheck{Column: col, Present: contains(columns, col)}
		if !check.Present {
			rep.Checks = append(rep.Checks, check)
			continue
		}
		allowed := map[string]bool{}
		for _, v := range schema.Expected[col] {
			allowed[v] = true
		}
		invalid := map[string]int{}
		for i, rec := range records {
			values := cellValues(rec[col], i, col)
			if len(values) == 0 {
				check.Nulls++
				continue
			}
			check.NonNull++
			for _, v := range values {
				if !allowed[v] {
					invalid[v]++
				}
			}
		}
		if rep.Rows > 0 {
			check.Coverage = float64(check.NonNull) / float64(rep.Rows)
		}
		for v, n := range invalid {
			check.Invalid = append(check.Invalid, ValueCount{Value: v, Count: n})
		}
		sort.Slice(check.Invalid, func(i, j int) bool {
			if check.Invalid[i].Count != check.Invalid[j].Count {
				return check.Invalid[i].Count > check.Invalid[j].Count
			}
			return check.Invalid[i].Value < check.Invalid[j].Value
		})
		rep.Checks = append(rep.Checks, check)
	}
	return rep
}

// cellValues flattens one cell into the values to check. List columns keep
// their uppercase convention, scalar columns their lowercase one.
func cellValues(cell string, row int, col string) []string {
	switch col {
	case schema.ColSpeechAct, schema.ColGeopoliticalFrame,
		schema.ColPositioning, schema.ColTemporality,
		schema.ColEmotionalRegister:
		list := parseStringList(cell, row, col)
		return list
	default:
		v := normScalar(cell)
		if v == "" {
			return nil
		}
		return []string{strings.ToLower(v)}
	}
}
