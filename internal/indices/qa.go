package indices

import (
	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/schema"
)

// QABlock pairs a run of journalist questions with the official answer that
// follows, up to the next question.
type QABlock struct {
	QuestionRows   []int
	ResponseRows   []int
	QuestionThemes []string
	ResponseThemes []string
	ResponseTypes  []string
}

func isQuestion(r dataset.Row) bool {
	return r.UtteranceType == "question" && (r.SpeakerRole == "journalist" || r.SpeakerRole == "")
}

func isResponse(r dataset.Row) bool {
	if !schema.OfficialRoles[r.SpeakerRole] {
		return false
	}
	return r.UtteranceType == "response" || r.UtteranceType == "statement"
}

// ExtractQABlocks scans the transcript in order and builds question/answer
// blocks. Meta-communication themes are excluded from question themes so
// the topic analysis reflects substance, not moderation.
func ExtractQABlocks(rows []dataset.Row) []QABlock {
	var blocks []QABlock
	i := 0
	for i < len(rows) {
		if !isQuestion(rows[i]) {
			i++
			continue
		}
		var b QABlock
		for i < len(rows) && isQuestion(rows[i]) {
			r := rows[i]
			b.QuestionRows = append(b.QuestionRows, r.Index)
			if r.ThemePrimary != "" && !schema.ExcludedThemes[r.ThemePrimary] {
				b.QuestionThemes = appendUnique(b.QuestionThemes, r.ThemePrimary)
			}
			i++
		}
		for i < len(rows) && !isQuestion(rows[i]) {
			r := rows[i]
			if isResponse(r) {
				b.ResponseRows = append(b.ResponseRows, r.Index)
				if r.ThemePrimary != "" {
					b.ResponseThemes = appendUnique(b.ResponseThemes, r.ThemePrimary)
				}
				if r.ResponseType != "" && r.ResponseType != "null" {
					b.ResponseTypes = append(b.ResponseTypes, r.ResponseType)
				}
			}
			i++
		}
		if len(b.ResponseRows) > 0 {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func appendUnique(ss []string, s string) []string {
	for _, v := range ss {
		if v == s {
			return ss
		}
	}
	return append(ss, s)
}

// DirectnessResult is the directness score with its response-type counts.
type DirectnessResult struct {
	Value  float64 // 0 evasive .. 1 direct
	N      int
	Counts map[string]int
}

// Directness averages response-type scores over every annotated response.
// 0.5 without evidence.
func Directness(rows []dataset.Row) DirectnessResult {
	res := DirectnessResult{Value: 0.5, Counts: map[string]int{}}
	sum := 0.0
	for _, r := range rows {
		score, ok := schema.ResponseTypeScores[r.ResponseType]
		if !ok {
			continue
		}
		res.Counts[r.ResponseType]++
		res.N++
		sum += score
	}
	if res.N == 0 {
		return res
	}
	res.Value = sum / float64(res.N)
	return res
}
