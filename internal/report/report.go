// Package report renders the full text analysis: every index with its
// formula and components, plus the main categorical distributions as ASCII
// bar charts.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/indices"
	"github.com/discourselab/speechviz/internal/schema"
)

const barWidth = 40

// Render builds the complete analysis report for one dataset.
func Render(d *dataset.Dataset) string {
	var b strings.Builder
	section := 0
	head := func(title string) {
		section++
		fmt.Fprintf(&b, "\n%s\n%d. %s\n%s\n", strings.Repeat("=", 72), section, title, strings.Repeat("=", 72))
	}

	rows := d.Rows
	stats := d.BasicStats()

	head("SUMMARY STATISTICS")
	fmt.Fprintf(&b, "  Sentences:  %d\n", stats.Sentences)
	fmt.Fprintf(&b, "  Speakers:   %d\n", stats.Speakers)
	if stats.Questions > 0 {
		fmt.Fprintf(&b, "  Questions:  %d\n", stats.Questions)
	}
	fmt.Fprintf(&b, "  Words:      %d\n", stats.WordCount)

	head("COMPOSITE INDICES")
	writeIndices(&b, rows)

	if themes := stats.ThemeCounts; len(themes) > 0 {
		head("THEME DISTRIBUTION")
		writeBars(&b, countPairs(themes), "")
	}

	frameCounts := dataset.CountValues(rows, func(r dataset.Row) []string { return r.Frames })
	if len(frameCounts) > 0 {
		head("GEOPOLITICAL FRAMES")
		threat := toSet(schema.ThreatFrames)
		opportunity := toSet(schema.OpportunityFrames)
		tagged := make([]dataset.ValueCount, 0, len(frameCounts))
		for _, c := range frameCounts {
			switch {
			case threat[c.Value]:
				c.Value = "(T) " + c.Value
			case opportunity[c.Value]:
				c.Value = "(O) " + c.Value
			}
			tagged = append(tagged, c)
		}
		writeBars(&b, tagged, "")
		fmt.Fprintf(&b, "\n  (T) threat frame, (O) opportunity frame\n")
	}

	if profiles := indices.ActorProfiles(rows, 2); len(profiles) > 0 {
		head("ACTORS")
		fmt.Fprintf(&b, "  %-28s %8s %5s %5s %5s %7s\n", "actor", "mentions", "pos", "neg", "neu", "net")
		for i, p := range profiles {
			if i >= 15 {
				break
			}
			fmt.Fprintf(&b, "  %-28s %8d %5d %5d %5d %+7.2f\n",
				p.Name, p.Mentions, p.Positive, p.Negative, p.Neutral, p.Net)
		}
	}

	actCounts := dataset.CountValues(rows, func(r dataset.Row) []string { return r.SpeechActs })
	if len(actCounts) > 0 {
		head("SPEECH ACTS")
		writeBars(&b, actCounts, "")
	}

	registerCounts := dataset.CountValues(rows, func(r dataset.Row) []string {
		if r.EmotionalRegister == "" {
			return nil
		}
		return []string{r.EmotionalRegister}
	})
	if len(registerCounts) > 0 {
		head("EMOTIONAL REGISTERS")
		writeBarsWithWeights(&b, registerCounts, schema.EmotionalRegisterWeights)
	}

	posCounts := dataset.CountValues(rows, func(r dataset.Row) []string { return r.Positions })
	if len(posCounts) > 0 {
		head("SELF-POSITIONING")
		writeBars(&b, posCounts, "")
	}

	writePolicySection(&b, rows, head)
	writeQASection(&b, rows, head)

	return b.String()
}

func writeIndices(b *strings.Builder, rows []dataset.Row) {
	tone := indices.DiplomaticTone(rows)
	if tone.N > 0 {
		fmt.Fprintf(b, "\n  Diplomatic tone index: %+.3f  (n=%d)\n", tone.Value, tone.N)
		fmt.Fprintf(b, "    formula: mean(register weights) / 2, weights -2.0 (alarmist) .. +1.5 (confident)\n")
	}
	wv := indices.Worldview(rows)
	if wv.ThreatN+wv.OpportunityN+wv.ToneN > 0 {
		fmt.Fprintf(b, "\n  Worldview index: %+.3f\n", wv.Value)
		fmt.Fprintf(b, "    frame balance: %+.3f (threat=%d, opportunity=%d), tone: %+.3f\n",
			wv.FrameBalance, wv.ThreatN, wv.OpportunityN, wv.ToneIndex)
		fmt.Fprintf(b, "    formula: balance*%.2f + tone*%.2f (weights = evidence shares)\n",
			wv.WeightFrame, wv.WeightTone)
	}
	ag := indices.Agency(rows)
	if ag.Active+ag.Cooperative+ag.Reactive > 0 {
		fmt.Fprintf(b, "\n  Agency index: %.3f  (active=%d, cooperative=%d, reactive=%d)\n",
			ag.Value, ag.Active, ag.Cooperative, ag.Reactive)
		fmt.Fprintf(b, "    formula: (active*1.0 + cooperative*0.7 + reactive*0.3) / total\n")
	}
	amb := indices.PolicyAmbition(rows)
	if amb.N > 0 {
		fmt.Fprintf(b, "\n  Policy ambition index: %.3f  (n=%d)\n", amb.Value, amb.N)
		fmt.Fprintf(b, "    formula: mean(specificity weights), concrete 1.0 / programmatic 0.6 / aspirational 0.2\n")
	}
	act := indices.ActionOrientation(rows)
	if act.Action+act.Descriptive > 0 {
		fmt.Fprintf(b, "\n  Action orientation: %.3f  (action=%d, descriptive=%d)\n",
			act.Value, act.Action, act.Descriptive)
		fmt.Fprintf(b, "    formula: action acts / (action + descriptive acts)\n")
	}
	grat := indices.Gratitude(rows)
	if grat.Thanking > 0 {
		fmt.Fprintf(b, "\n  Gratitude index: %.3f  (%d thanking of %d sentences)\n",
			grat.Value, grat.Thanking, grat.N)
	}
	for _, p := range indices.Posture(rows) {
		fmt.Fprintf(b, "\n  Rhetorical posture, %s: %+.3f  (n=%d)\n", p.Speaker, p.Value, p.N)
		fmt.Fprintf(b, "    formula: mean(tone weights), -2.0 (threatening) .. +1.5 (deferential)\n")
	}
	dir := indices.Directness(rows)
	if dir.N > 0 {
		fmt.Fprintf(b, "\n  Directness score: %.3f  (n=%d)\n", dir.Value, dir.N)
		fmt.Fprintf(b, "    formula: mean(response weights), direct 1.0 / partial 0.5 / attack 0.25 / pivot, deflection 0.0\n")
	}
	anim := indices.Animosity(rows)
	if anim.UsN+anim.ThemN > 0 {
		fmt.Fprintf(b, "\n  Animosity index: %+.3f  (us: %+.2f over %d, them: %+.2f over %d)\n",
			anim.Value, anim.UsScore, anim.UsN, anim.ThemScore, anim.ThemN)
		fmt.Fprintf(b, "    formula: (us score - them score) / 2, score = (pos - neg) / mentions\n")
	}
}

func writeBars(b *strings.Builder, counts []dataset.ValueCount, indent string) {
	if len(counts) == 0 {
		return
	}
	maxN := counts[0].Count
	for _, c := range counts {
		if c.Count > maxN {
			maxN = c.Count
		}
	}
	for i, c := range counts {
		if i >= 15 {
			break
		}
		bar := strings.Repeat("#", scaled(c.Count, maxN))
		fmt.Fprintf(b, "%s  %-26s %5d  %s\n", indent, c.Value, c.Count, bar)
	}
}

func writeBarsWithWeights(b *strings.Builder, counts []dataset.ValueCount, weights map[string]float64) {
	maxN := 0
	for _, c := range counts {
		if c.Count > maxN {
			maxN = c.Count
		}
	}
	for _, c := range counts {
		bar := strings.Repeat("#", scaled(c.Count, maxN))
		w, ok := weights[c.Value]
		if ok {
			fmt.Fprintf(b, "  %-26s %5d  [%+.1f]  %s\n", c.Value, c.Count, w, bar)
		} else {
			fmt.Fprintf(b, "  %-26s %5d         %s\n", c.Value, c.Count, bar)
		}
	}
}

func writePolicySection(b *strings.Builder, rows []dataset.Row, head func(string)) {
	domains := map[string]int{}
	total := 0
	for _, r := range rows {
		if r.Policy == nil || !r.Policy.Present {
			continue
		}
		total++
		if r.Policy.Domain != "" {
			domains[r.Policy.Domain]++
		}
	}
	if total == 0 {
		return
	}
	head("POLICY CONTENT")
	fmt.Fprintf(b, "  %d sentences carry policy content\n\n", total)
	writeBars(b, countPairs(domains), "")
}

func writeQASection(b *strings.Builder, rows []dataset.Row, head func(string)) {
	blocks := indices.ExtractQABlocks(rows)
	if len(blocks) == 0 {
		return
	}
	head("QUESTION AND ANSWER")
	fmt.Fprintf(b, "  %d question-answer blocks\n\n", len(blocks))
	types := map[string]int{}
	for _, blk := range blocks {
		for _, rt := range blk.ResponseTypes {
			types[rt]++
		}
	}
	writeBars(b, countPairs(types), "")
}

func countPairs(m map[string]int) []dataset.ValueCount {
	var out []dataset.ValueCount
	for k, n := range m {
		out = append(out, dataset.ValueCount{Value: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

func scaled(n, max int) int {
	if max <= 0 {
		return 0
	}
	w := n * barWidth / max
	if w == 0 && n > 0 {
		w = 1
	}
	return w
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}
