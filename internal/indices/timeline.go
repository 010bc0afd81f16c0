package indices

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/schema"
)

// Timeline tuning constants.
const (
	rollingWindow     = 10
	rollingMinPeriods = 3
	curvePoints       = 400
	peakProminence    = 0.25
	peakMinDistance   = 15
	peaksPerSign      = 4
)

// TimelinePoint is one resampled point of the smoothed tone curve.
type TimelinePoint struct {
	X float64 // position in sentence order, 0..n-1
	Y float64 // smoothed tone weight
}

// Peak is one detected emotional peak with its source sentence.
type Peak struct {
	RowIndex int
	Value    float64
	Sign     int // +1 calm/confident, -1 alarmed/combative
	Excerpt  string
	Speaker  string
}

// Timeline is the full prepared tone-over-time dataset for the timeline
// figure.
type Timeline struct {
	Smoothed []float64 // rolling mean per annotated row
	RowIndex []int     // original row index per smoothed sample
	Curve    []TimelinePoint
	Peaks    []Peak
}

// RollingMean computes a centered rolling mean. Windows shorter than
// minPeriods yield NaN, which callers skip.
func RollingMean(values []float64, window, minPeriods int) []float64 {
	out := make([]float64, len(values))
	half := window / 2
	for i := range values {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + (window - half - 1)
		if hi >= len(values) {
			hi = len(values) - 1
		}
		n := hi - lo + 1
		if n < minPeriods {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(n)
	}
	return out
}

// FindPeaks returns indices of local maxima with at least the given
// prominence, thinned so that no two peaks sit closer than minDistance.
// Higher peaks win the distance contest.
func FindPeaks(y []float64, prominence float64, minDistance int) []int {
	var candidates []int
	for i := 1; i < len(y)-1; i++ {
		if y[i] > y[i-1] && y[i] >= y[i+1] && peakProminenceAt(y, i) >= prominence {
			candidates = append(candidates, i)
		}
	}
	sort.Slice(candidates, func(a, b int) bool {
		return y[candidates[a]] > y[candidates[b]]
	})
	var kept []int
	for _, c := range candidates {
		ok := true
		for _, k := range kept {
			if abs(c-k) < minDistance {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, c)
		}
	}
	sort.Ints(kept)
	return kept
}

// peakProminenceAt walks outward from a local maximum until a higher point
// or the edge, tracking the highest valley that must be descended.
func peakProminenceAt(y []float64, i int) float64 {
	leftMin := y[i]
	for j := i - 1; j >= 0; j-- {
		if y[j] > y[i] {
			break
		}
		if y[j] < leftMin {
			leftMin = y[j]
		}
	}
	rightMin := y[i]
	for j := i + 1; j < len(y); j++ {
		if y[j] > y[i] {
			break
		}
		if y[j] < rightMin {
			rightMin = y[j]
		}
	}
	base := math.Max(leftMin, rightMin)
	return y[i] - base
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// PrepareTimeline builds the smoothed, resampled tone curve with its
// labeled peaks. Returns nil when fewer than rollingMinPeriods rows carry a
// usable tone signal.
func PrepareTimeline(rows []dataset.Row) *Timeline {
	var raw []float64
	var rowIdx []int
	for _, r := range rows {
		w, ok := schema.ToneWeights[r.Tone]
		if !ok {
			if w, ok = schema.EmotionalRegisterWeights[r.EmotionalRegister]; !ok {
				continue
			}
		}
		raw = append(raw, w)
		rowIdx = append(rowIdx, r.Index)
	}
	if len(raw) < rollingMinPeriods {
		return nil
	}

	smoothed := RollingMean(raw, rollingWindow, rollingMinPeriods)
	var xs, ys []float64
	var smoothIdx []int
	for i, v := range smoothed {
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, v)
		smoothIdx = append(smoothIdx, rowIdx[i])
	}
	if len(xs) < 2 {
		return nil
	}

	tl := &Timeline{Smoothed: ys, RowIndex: smoothIdx}
	tl.Curve = resample(xs, ys, curvePoints)

	curveY := make([]float64, len(tl.Curve))
	for i, p := range tl.Curve {
		curveY[i] = p.Y
	}
	negY := make([]float64, len(curveY))
	for i, v := range curveY {
		negY[i] = -v
	}

	pos := topPeaks(curveY, FindPeaks(curveY, peakProminence, peakMinDistance), peaksPerSign)
	neg := topPeaks(negY, FindPeaks(negY, peakProminence, peakMinDistance), peaksPerSign)

	for _, ci := range pos {
		tl.addPeak(rows, xs, ci, +1)
	}
	for _, ci := range neg {
		tl.addPeak(rows, xs, ci, -1)
	}
	sort.Slice(tl.Peaks, func(i, j int) bool {
		return tl.Peaks[i].RowIndex < tl.Peaks[j].RowIndex
	})
	return tl
}

// resample fits a natural cubic spline and evaluates it on a uniform grid.
// Falls back to the raw points when the fit is not possible.
func resample(xs, ys []float64, points int) []TimelinePoint {
	var spline interp.NaturalCubic
	if err := spline.Fit(xs, ys); err != nil || len(xs) < 4 {
		out := make([]TimelinePoint, len(xs))
		for i := range xs {
			out[i] = TimelinePoint{X: xs[i], Y: ys[i]}
		}
		return out
	}
	lo, hi := xs[0], xs[len(xs)-1]
	out := make([]TimelinePoint, points)
	for i := 0; i < points; i++ {
		x := lo + (hi-lo)*float64(i)/float64(points-1)
		out[i] = TimelinePoint{X: x, Y: spline.Predict(x)}
	}
	return out
}

// topPeaks keeps the n highest peaks, returned in position order.
func topPeaks(y []float64, peaks []int, n int) []int {
	sorted := append([]int(nil), peaks...)
	sort.Slice(sorted, func(a, b int) bool { return y[sorted[a]] > y[sorted[b]] })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	sort.Ints(sorted)
	return sorted
}

// addPeak maps a curve index back to its source row and attaches an
// excerpt whose register matches the peak's sign, searching nearby rows
// when the exact row does not match.
func (tl *Timeline) addPeak(rows []dataset.Row, xs []float64, curveIdx, sign int) {
	x := tl.Curve[curveIdx].X
	nearest := 0
	best := math.Inf(1)
	for i, xv := range xs {
		if d := math.Abs(xv - x); d < best {
			best = d
			nearest = i
		}
	}
	rowIdx := tl.RowIndex[nearest]

	excerptRow := peakExcerptRow(rows, rowIdx, sign)
	p := Peak{RowIndex: rowIdx, Value: tl.Curve[curveIdx].Y, Sign: sign}
	if excerptRow >= 0 {
		p.Excerpt = rows[excerptRow].Text
		p.Speaker = rows[excerptRow].Speaker
	}
	tl.Peaks = append(tl.Peaks, p)
}

// peakExcerptRow looks at the peak row and its neighbors (offsets 1, -1, 2,
// -2, 3, -3) for a sentence whose register agrees with the peak's sign.
// Falls back to the peak row itself.
func peakExcerptRow(rows []dataset.Row, rowIdx, sign int) int {
	pos := -1
	for i, r := range rows {
		if r.Index == rowIdx {
			pos = i
			break
		}
	}
	if pos < 0 {
		return -1
	}
	offsets := []int{0, 1, -1, 2, -2, 3, -3}
	for _, off := range offsets {
		i := pos + off
		if i < 0 || i >= len(rows) || rows[i].Text == "" {
			continue
		}
		reg := rows[i].EmotionalRegister
		if sign > 0 && schema.PositiveRegisters[reg] {
			return i
		}
		if sign < 0 && schema.NegativeRegisters[reg] {
			return i
		}
	}
	return pos
}
