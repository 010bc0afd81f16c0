// Package indices computes the composite indices behind the figures. Every
// index is a single pass over the rows and returns a neutral default when
// the input carries no evidence for it.
package indices

import (
	"github.com/montanaflynn/stats"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/schema"
)

func mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0, false
	}
	return m, true
}

// ToneResult is the diplomatic tone index with its evidence count.
type ToneResult struct {
	Value float64 // -1 (alarmist) .. +0.75 (confident)
	N     int
}

// DiplomaticTone averages emotional-register weights and halves the mean to
// land in a roughly [-1, 1] band. 0 when no register annotations exist.
func DiplomaticTone(rows []dataset.Row) ToneResult {
	var weights []float64
	for _, r := range rows {
		if w, ok := schema.EmotionalRegisterWeights[r.EmotionalRegister]; ok {
			weights = append(weights, w)
		}
	}
	m, ok := mean(weights)
	if !ok {
		return ToneResult{}
	}
	return ToneResult{Value: m / 2, N: len(weights)}
}

// WorldviewResult is the geopolitical worldview index with its components.
// Value < 0 reads as anxious/threat-framed, > 0 as opportunity-framed.
type WorldviewResult struct {
	Value        float64
	FrameBalance float64
	ToneIndex    float64
	ThreatN      int
	OpportunityN int
	ToneN        int
	WeightFrame  float64
	WeightTone   float64
}

// Worldview combines the threat/opportunity frame balance with the
// diplomatic tone index, each weighted by its share of the evidence.
func Worldview(rows []dataset.Row) WorldviewResult {
	threat := map[string]bool{}
	for _, f := range schema.ThreatFrames {
		threat[f] = true
	}
	opportunity := map[string]bool{}
	for _, f := range schema.OpportunityFrames {
		opportunity[f] = true
	}

	var res WorldviewResult
	for _, r := range rows {
		for _, f := range r.Frames {
			switch {
			case threat[f]:
				res.ThreatN++
			case opportunity[f]:
				res.OpportunityN++
			}
		}
	}
	tone := DiplomaticTone(rows)
	res.ToneIndex = tone.Value
	res.ToneN = tone.N

	frameN := res.ThreatN + res.OpportunityN
	if frameN > 0 {
		res.FrameBalance = float64(res.OpportunityN-res.ThreatN) / float64(frameN)
	}
	total := frameN + res.ToneN
	if total == 0 {
		return res
	}
	res.WeightFrame = float64(frameN) / float64(total)
	res.WeightTone = float64(res.ToneN) / float64(total)
	res.Value = res.FrameBalance*res.WeightFrame + res.ToneIndex*res.WeightTone
	return res
}

// AgencyResult is the agency index with its positioning counts.
type AgencyResult struct {
	Value       float64 // 0 (passive) .. 1 (active)
	Active      int
	Cooperative int
	Reactive    int
}

// Agency scores self-positioning: active stances count full, cooperative
// 0.7, reactive 0.3. NOT_APPLICABLE is ignored. 0.5 without evidence.
func Agency(rows []dataset.Row) AgencyResult {
	active := toSet(schema.ActivePositions)
	coop := toSet(schema.CooperativePositions)
	reactive := toSet(schema.ReactivePositions)

	res := AgencyResult{Value: 0.5}
	for _, r := range rows {
		for _, p := range r.Positions {
			switch {
			case active[p]:
				res.Active++
			case coop[p]:
				res.Cooperative++
			case reactive[p]:
				res.Reactive++
			}
		}
	}
	total := res.Active + res.Cooperative + res.Reactive
	if total == 0 {
		return res
	}
	res.Value = (float64(res.Active)*1.0 + float64(res.Cooperative)*0.7 + float64(res.Reactive)*0.3) / float64(total)
	return res
}

// AmbitionResult is the policy ambition index.
type AmbitionResult struct {
	Value float64 // 0.2 (aspirational) .. 1 (concrete)
	N     int
}

// PolicyAmbition averages specificity weights over sentences carrying
// policy content. 0.5 without evidence.
func PolicyAmbition(rows []dataset.Row) AmbitionResult {
	var weights []float64
	for _, r := range rows {
		if r.Policy == nil || !r.Policy.Present {
			continue
		}
		if w, ok := schema.SpecificityWeights[r.Policy.Specificity]; ok {
			weights = append(weights, w)
		}
	}
	m, ok := mean(weights)
	if !ok {
		return AmbitionResult{Value: 0.5}
	}
	return AmbitionResult{Value: m, N: len(weights)}
}

// ActionResult is the action orientation index with its act counts.
type ActionResult struct {
	Value       float64 // share of action acts
	Action      int
	Descriptive int
}

// ActionOrientation is the share of forward-pushing speech acts among
// action plus descriptive acts. 0.5 without evidence.
func ActionOrientation(rows []dataset.Row) ActionResult {
	action := toSet(schema.ActionActs)
	descriptive := toSet(schema.DescriptiveActs)

	res := ActionResult{Value: 0.5}
	for _, r := range rows {
		for _, a := range r.SpeechActs {
			switch {
			case action[a]:
				res.Action++
			case descriptive[a]:
				res.Descriptive++
			}
		}
	}
	total := res.Action + res.Descriptive
	if total == 0 {
		return res
	}
	res.Value = float64(res.Action) / float64(total)
	return res
}

// PostureResult is one speaker's rhetorical posture.
type PostureResult struct {
	Speaker string
	Value   float64 // -2 (threatening) .. +1.5 (deferential)
	N       int
}

// Posture averages tone weights per speaker over official (non-journalist)
// rows, most annotated speaker first.
func Posture(rows []dataset.Row) []PostureResult {
	perSpeaker := map[string][]float64{}
	var order []string
	for _, r := range rows {
		if r.Speaker == "" || !schema.OfficialRoles[r.SpeakerRole] {
			continue
		}
		w, ok := schema.ToneWeights[r.Tone]
		if !ok {
			continue
		}
		if _, seen := perSpeaker[r.Speaker]; !seen {
			order = append(order, r.Speaker)
		}
		perSpeaker[r.Speaker] = append(perSpeaker[r.Speaker], w)
	}
	var out []PostureResult
	for _, s := range order {
		m, _ := mean(perSpeaker[s])
		out = append(out, PostureResult{Speaker: s, Value: m, N: len(perSpeaker[s])})
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].N > out[i].N {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// GratitudeResult is the gratitude index.
type GratitudeResult struct {
	Value    float64 // share of thanking sentences
	Thanking int     // sentences with a THANKING act
	N        int     // total sentences
}

// Gratitude is the share of sentences performing a THANKING act over all
// sentences, annotated or not.
func Gratitude(rows []dataset.Row) GratitudeResult {
	res := GratitudeResult{N: len(rows)}
	for _, r := range rows {
		for _, a := range r.SpeechActs {
			if a == "THANKING" {
				res.Thanking++
				break
			}
		}
	}
	if res.N == 0 {
		return res
	}
	res.Value = float64(res.Thanking) / float64(res.N)
	return res
}

// AnimosityResult is the in-group vs out-group valence gap.
type AnimosityResult struct {
	Value     float64 // 0 neutral, 1 maximal hostility gap
	UsScore   float64
	ThemScore float64
	UsN       int
	ThemN     int
}

// Animosity compares valence toward out-group entities with valence toward
// in-group entities. Each group scores (positive-negative)/total; the index
// is (usScore-themScore)/2 so that praising us while damning them reads
// high.
func Animosity(rows []dataset.Row) AnimosityResult {
	var res AnimosityResult
	var usPos, usNeg, themPos, themNeg int
	for _, r := range rows {
		for _, e := range r.Entities {
			us := schema.UsEntities[e.Name]
			them := schema.ThemEntities[e.Name]
			if !us && !them {
				continue
			}
			pos := e.Valence == "POSITIVE"
			neg := e.Valence == "NEGATIVE"
			if us {
				res.UsN++
				if pos {
					usPos++
				}
				if neg {
					usNeg++
				}
			} else {
				res.ThemN++
				if pos {
					themPos++
				}
				if neg {
					themNeg++
				}
			}
		}
	}
	if res.UsN > 0 {
		res.UsScore = float64(usPos-usNeg) / float64(res.UsN)
	}
	if res.ThemN > 0 {
		res.ThemScore = float64(themPos-themNeg) / float64(res.ThemN)
	}
	if res.UsN == 0 && res.ThemN == 0 {
		return res
	}
	res.Value = (res.UsScore - res.ThemScore) / 2
	return res
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}
