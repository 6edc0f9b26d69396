package growth

import (
	"fmt"
	"log/slog"
	"math"
)

// tieEpsilon absorbs floating point noise when comparing errors against the
// tolerance band.
const tieEpsilon = 1e-9

func (p *Profiler) fit(samples []Sample) (*Result, error) {
	keep := monotoneSubsequence(samples)

	res := &Result{
		Samples: append([]Sample(nil), samples...),
	}

	retained := make([]Sample, 0, len(samples))
	for i, s := range samples {
		if keep[i] {
			retained = append(retained, s)
			continue
		}

		a := Anomaly{
			Index:   i,
			Sample:  s,
			Message: describeAnomaly(samples, keep, i),
		}

		slog.Warn("measurement anomaly",
			slog.Int("index", a.Index),
			slog.Int("size", s.Size),
			slog.Float64("cost", s.Cost),
			slog.String("reason", a.Message),
		)

		res.Anomalies = append(res.Anomalies, a)
	}

	if len(retained) < p.minSamples {
		return nil, &InsufficientDataError{
			Samples:   res.Samples,
			Anomalies: res.Anomalies,
			Retained:  len(retained),
			Required:  p.minSamples,
		}
	}

	pairs := ratioPairs(retained)

	res.Scores = make([]Score, 0, len(classes))

	best := math.Inf(1)
	for _, c := range Classes() {
		e := classError(c, pairs)
		res.Scores = append(res.Scores, Score{Class: c, Error: e})
		best = math.Min(best, e)
	}

	for _, s := range res.Scores {
		if s.Error <= best+p.tolerance+tieEpsilon {
			res.Candidates = append(res.Candidates, s)
		}
	}

	res.Class = res.Candidates[0].Class
	res.Score = res.Candidates[0].Error
	res.Ambiguous = len(res.Candidates) > 1
	res.Exponent = logLogSlope(retained)

	slog.Debug("growth fitted",
		slog.String("class", res.Class.String()),
		slog.Float64("score", res.Score),
		slog.Int("candidates", len(res.Candidates)),
		slog.Int("anomalies", len(res.Anomalies)),
	)

	return res, nil
}

// ratioPair is one usable pair of consecutive retained samples.
type ratioPair struct {
	from, to int
	observed float64
}

// ratioPairs returns the observed log cost ratio of each pair of consecutive
// samples. Equal costs give a ratio of zero, including two zero costs.
//
// A zero cost means the run fell below what the measurement can resolve, so
// it is read as half of one unit, or half of the smallest positive cost when
// costs are fractional. A rise from zero then counts as growth.
func ratioPairs(samples []Sample) []ratioPair {
	floor := zeroFloor(samples)

	pairs := make([]ratioPair, 0, len(samples))

	for i := 1; i < len(samples); i++ {
		a, b := samples[i-1], samples[i]

		var obs float64
		if a.Cost != b.Cost {
			obs = math.Log(math.Max(b.Cost, floor) / math.Max(a.Cost, floor))
		}

		pairs = append(pairs, ratioPair{from: a.Size, to: b.Size, observed: obs})
	}

	return pairs
}

// zeroFloor returns the cost substituted for zero when taking ratios.
func zeroFloor(samples []Sample) float64 {
	smallest := 1.0

	for _, s := range samples {
		if s.Cost > 0 && s.Cost < smallest {
			smallest = s.Cost
		}
	}

	return smallest / 2
}

// classError is the root mean square difference between observed and expected
// log ratios for c.
func classError(c Class, pairs []ratioPair) float64 {
	var sum float64

	for _, pr := range pairs {
		d := pr.observed - (c.LogGrowth(pr.to) - c.LogGrowth(pr.from))
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(pairs)))
}

// monotoneSubsequence marks the longest run of samples whose costs never
// decrease. Ties prefer the earliest samples, so a drop after a spike marks
// the drop, not the spike. Length wins over position: an early sample above
// a longer consistent run is itself the anomaly, e.g. costs 10, 5, 6 keep
// 5 and 6 and flag 10.
func monotoneSubsequence(samples []Sample) []bool {
	n := len(samples)
	length := make([]int, n)
	prev := make([]int, n)

	end := -1

	for i := range samples {
		length[i] = 1
		prev[i] = -1

		for j := range i {
			if samples[j].Cost <= samples[i].Cost && length[j]+1 > length[i] {
				length[i] = length[j] + 1
				prev[i] = j
			}
		}

		if end < 0 || length[i] > length[end] {
			end = i
		}
	}

	keep := make([]bool, n)
	for i := end; i >= 0; i = prev[i] {
		keep[i] = true
	}

	return keep
}

func describeAnomaly(samples []Sample, keep []bool, i int) string {
	s := samples[i]

	for j := i - 1; j >= 0; j-- {
		if keep[j] && samples[j].Cost > s.Cost {
			return fmt.Sprintf("cost %g at size %d is below cost %g at smaller size %d",
				s.Cost, s.Size, samples[j].Cost, samples[j].Size)
		}
	}

	for j := i + 1; j < len(samples); j++ {
		if keep[j] && samples[j].Cost < s.Cost {
			return fmt.Sprintf("cost %g at size %d exceeds cost %g at larger size %d",
				s.Cost, s.Size, samples[j].Cost, samples[j].Size)
		}
	}

	return fmt.Sprintf("cost %g at size %d breaks monotonic growth", s.Cost, s.Size)
}

// logLogSlope returns the least-squares slope of ln(cost) over ln(size),
// ignoring zero costs.
func logLogSlope(samples []Sample) float64 {
	var xs, ys []float64

	for _, s := range samples {
		if s.Cost <= 0 {
			continue
		}

		xs = append(xs, math.Log(float64(s.Size)))
		ys = append(ys, math.Log(s.Cost))
	}

	if len(xs) < 2 {
		return 0
	}

	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}

	mx /= float64(len(xs))
	my /= float64(len(ys))

	var num, den float64
	for i := range xs {
		num += (xs[i] - mx) * (ys[i] - my)
		den += (xs[i] - mx) * (xs[i] - mx)
	}

	if den == 0 {
		return 0
	}

	return num / den
}
