package dataset

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/discourselab/speechviz/internal/schema"
)

var log = zap.NewNop()

// SetLogger installs a logger for cell-level parse diagnostics. The default
// is a no-op logger; the CLI installs a real one under --debug.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// textColumns are checked in order; the first one present becomes the
// sentence text source.
var textColumns = []string{"text", "sentence", "segment", "utterance"}

// annotationColumns may hold the whole annotation as one JSON object cell.
var annotationColumns = []string{"labels", "annotation", "annotations"}

// Parse types raw records into a Dataset. A JSON annotation column is
// expanded into regular columns first; malformed cells coerce to empty
// values and never abort the run.
func Parse(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records in input")
	}

	records = expandAnnotations(records)

	columns := collectColumns(records)
	textCol := ""
	for _, c := range textColumns {
		if contains(columns, c) {
			textCol = c
			break
		}
	}
	if textCol == "" {
		return nil, fmt.Errorf("no text column found (want one of %s)", strings.Join(textColumns, ", "))
	}

	d := &Dataset{Columns: columns, TextColumn: textCol}
	for i, rec := range records {
		row := Row{
			Index:             i,
			Text:              strings.TrimSpace(rec[textCol]),
			Speaker:           strings.TrimSpace(rec[schema.ColSpeaker]),
			SpeakerRole:       normScalar(rec[schema.ColSpeakerRole]),
			UtteranceType:     normScalar(rec[schema.ColUtteranceType]),
			ThemePrimary:      normScalar(rec[schema.ColThemePrimary]),
			Tone:              normScalar(rec[schema.ColTone]),
			ResponseType:      normScalar(rec[schema.ColResponseType]),
			EmotionalRegister: strings.ToUpper(normScalar(rec[schema.ColEmotionalRegister])),
			SpeechActs:        parseStringList(rec[schema.ColSpeechAct], i, schema.ColSpeechAct),
			Frames:            parseStringList(rec[schema.ColGeopoliticalFrame], i, schema.ColGeopoliticalFrame),
			Positions:         parseStringList(rec[schema.ColPositioning], i, schema.ColPositioning),
			Temporality:       parseStringList(rec[schema.ColTemporality], i, schema.ColTemporality),
		}
		row.Actors = parseActors(rec[schema.ColActors], i)
		row.Entities = parseEntities(rec[schema.ColEntities], i)
		row.Policy = parsePolicy(rec[schema.ColPolicyContent], i)
		row.Stances = parseStances(rec[schema.ColIssueStances], i)
		d.Rows = append(d.Rows, row)
	}
	return d, nil
}

// expandAnnotations merges a JSON-object annotation cell into the record's
// columns. Existing columns win over expanded ones.
func expandAnnotations(records []Record) []Record {
	col := ""
	for _, c := range annotationColumns {
		for _, rec := range records {
			if v, ok := rec[c]; ok && strings.HasPrefix(strings.TrimSpace(v), "{") {
				col = c
				break
			}
		}
		if col != "" {
			break
		}
	}
	if col == "" {
		return records
	}

	out := make([]Record, 0, len(records))
	for i, rec := range records {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(rec[col]), &obj); err != nil {
			log.Debug("malformed annotation cell", zap.Int("row", i), zap.String("column", col))
			out = append(out, rec)
			continue
		}
		merged := make(Record, len(rec)+len(obj))
		for k, v := range recordFromJSON(obj) {
			merged[k] = v
		}
		for k, v := range rec {
			if k != col {
				merged[k] = v
			}
		}
		out = append(out, merged)
	}
	return out
}

func collectColumns(records []Record) []string {
	seen := map[string]bool{}
	var cols []string
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	return cols
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// normScalar trims a scalar cell and drops textual nulls.
func normScalar(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "none", "nan", "n/a":
		return ""
	}
	return s
}

// parseStringList reads a cell holding either a JSON list of strings or a
// bare scalar. Malformed JSON coerces to nil.
func parseStringList(cell string, row int, col string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	if strings.HasPrefix(cell, "[") {
		var list []string
		if err := json.Unmarshal([]byte(cell), &list); err != nil {
			log.Debug("malformed list cell", zap.Int("row", row), zap.String("column", col))
			return nil
		}
		out := list[:0]
		for _, v := range list {
			if v = normScalar(v); v != "" {
				out = append(out, strings.ToUpper(v))
			}
		}
		return out
	}
	if v := normScalar(cell); v != "" {
		return []string{strings.ToUpper(v)}
	}
	return nil
}

func parseActors(cell string, row int) []Actor {
	cell = strings.TrimSpace(cell)
	if cell == "" || !strings.HasPrefix(cell, "[") {
		return nil
	}
	var actors []Actor
	if err := json.Unmarshal([]byte(cell), &actors); err != nil {
		log.Debug("malformed actors cell", zap.Int("row", row))
		return nil
	}
	out := actors[:0]
	for _, a := range actors {
		a.Name = schema.NormalizeActor(a.Name)
		if a.Name == "" {
			continue
		}
		a.Valence = strings.ToUpper(strings.TrimSpace(a.Valence))
		out = append(out, a)
	}
	return out
}

func parseEntities(cell string, row int) []Entity {
	cell = strings.TrimSpace(cell)
	if cell == "" || !strings.HasPrefix(cell, "[") {
		return nil
	}
	var entities []Entity
	if err := json.Unmarshal([]byte(cell), &entities); err != nil {
		log.Debug("malformed entities cell", zap.Int("row", row))
		return nil
	}
	out := entities[:0]
	for _, e := range entities {
		e.Name = schema.NormalizeActor(e.Name)
		if e.Name == "" {
			continue
		}
		e.Valence = strings.ToUpper(strings.TrimSpace(e.Valence))
		out = append(out, e)
	}
	return out
}

func parsePolicy(cell string, row int) *Policy {
	cell = strings.TrimSpace(cell)
	if cell == "" || !strings.HasPrefix(cell, "{") {
		return nil
	}
	var raw struct {
		Present     json.RawMessage `json:"present"`
		Domain      string          `json:"domain"`
		ActionType  string          `json:"action_type"`
		Specificity string          `json:"specificity"`
		Summary     string          `json:"summary"`
	}
	if err := json.Unmarshal([]byte(cell), &raw); err != nil {
		log.Debug("malformed policy cell", zap.Int("row", row))
		return nil
	}
	return &Policy{
		Present:     flexBool(raw.Present),
		Domain:      normScalar(raw.Domain),
		ActionType:  strings.ToUpper(normScalar(raw.ActionType)),
		Specificity: strings.ToUpper(normScalar(raw.Specificity)),
		Summary:     strings.TrimSpace(raw.Summary),
	}
}

func parseStances(cell string, row int) []Stance {
	cell = strings.TrimSpace(cell)
	if cell == "" || !strings.HasPrefix(cell, "[") {
		return nil
	}
	var raw []struct {
		Issue    string          `json:"issue"`
		Type     string          `json:"stance_type"`
		Content  string          `json:"stance_content"`
		Explicit json.RawMessage `json:"explicit"`
	}
	if err := json.Unmarshal([]byte(cell), &raw); err != nil {
		log.Debug("malformed stances cell", zap.Int("row", row))
		return nil
	}
	var out []Stance
	for _, s := range raw {
		if normScalar(s.Issue) == "" {
			continue
		}
		out = append(out, Stance{
			Issue:    normScalar(s.Issue),
			Type:     strings.ToUpper(normScalar(s.Type)),
			Content:  strings.TrimSpace(s.Content),
			Explicit: flexBool(s.Explicit),
		})
	}
	return out
}

// flexBool accepts JSON true/false, "true"/"false" strings, and 0/1.
func flexBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes", "1":
			return true
		}
		return false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n != 0
	}
	return false
}
