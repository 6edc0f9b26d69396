package growth

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sample is one (input size, measured cost) observation.
type Sample struct {
	Size int     `json:"size" yaml:"size"`
	Cost float64 `json:"cost" yaml:"cost"`
}

// Score is the goodness of fit of one [Class] against a run's samples.
//
// Error is the root mean square difference between observed and expected
// log cost ratios across consecutive samples. Zero is a perfect fit.
type Score struct {
	Class Class   `json:"class" yaml:"class"`
	Error float64 `json:"error" yaml:"error"`
}

// Anomaly records a sample that broke cost monotonicity and was left out of
// the fit. Anomalies are warnings; they never fail a run.
type Anomaly struct {
	Message string `json:"message" yaml:"message"`
	Sample  Sample `json:"sample"  yaml:"sample"`
	Index   int    `json:"index"   yaml:"index"`
}

// Result is the outcome of a single profiling run.
type Result struct {
	// Samples holds every observation in increasing size order, including
	// any excluded as anomalies.
	Samples []Sample `json:"samples" yaml:"samples"`
	// Candidates holds every class whose error is within tolerance of the
	// best error, lowest order first. Class is always Candidates[0].
	Candidates []Score `json:"candidates" yaml:"candidates"`
	// Scores holds the fit of every class, in growth order.
	Scores    []Score   `json:"scores"              yaml:"scores"`
	Anomalies []Anomaly `json:"anomalies,omitempty" yaml:"anomalies,omitempty"`
	Class     Class     `json:"class"               yaml:"class"`
	// Score is the error of Class.
	Score float64 `json:"score" yaml:"score"`
	// Exponent is the slope of the least-squares fit of ln(cost) against
	// ln(size) over the retained samples. Zero when it is undefined.
	Exponent float64 `json:"exponent" yaml:"exponent"`
	// Ambiguous is set when more than one class fits within tolerance.
	Ambiguous bool `json:"ambiguous" yaml:"ambiguous"`
}

// HasAnomalies reports whether any sample was excluded from the fit.
func (r *Result) HasAnomalies() bool {
	return len(r.Anomalies) > 0
}

// Fingerprint returns a stable digest of the result. Two runs over identical
// deterministic work and sizes have the same fingerprint.
func (r *Result) Fingerprint() uint64 {
	d := xxhash.New()

	var buf []byte

	buf = binary.LittleEndian.AppendUint64(buf, uint64(r.Class))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(r.Score))

	for _, s := range r.Samples {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(s.Size))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.Cost))
	}

	for _, c := range r.Candidates {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(c.Class))
	}

	for _, a := range r.Anomalies {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(a.Index))
	}

	//nolint:errcheck // Digest.Write never fails.
	d.Write(buf)

	return d.Sum64()
}
