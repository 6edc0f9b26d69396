package report

import (
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/bigo/growth"
)

// Candidate is a class and its fit error, as serialized in a [Document].
type Candidate struct {
	Class    string  `json:"class"    yaml:"class"`
	Notation string  `json:"notation" yaml:"notation"`
	Error    float64 `json:"error"    yaml:"error"`
}

// Document is the serialized form of a [growth.Result].
type Document struct {
	Workload    string           `json:"workload,omitempty"  yaml:"workload,omitempty"`
	Class       string           `json:"class"               yaml:"class"`
	Notation    string           `json:"notation"            yaml:"notation"`
	Fingerprint string           `json:"fingerprint"         yaml:"fingerprint"`
	Candidates  []Candidate      `json:"candidates"          yaml:"candidates"`
	Scores      []Candidate      `json:"scores"              yaml:"scores"`
	Anomalies   []growth.Anomaly `json:"anomalies,omitempty" yaml:"anomalies,omitempty"`
	Samples     []growth.Sample  `json:"samples"             yaml:"samples"`
	Score       float64          `json:"score"               yaml:"score"`
	Exponent    float64          `json:"exponent"            yaml:"exponent"`
	Ambiguous   bool             `json:"ambiguous"           yaml:"ambiguous"`
}

// NewDocument converts res into a [Document]. The workload name is optional.
func NewDocument(workload string, res *growth.Result) Document {
	return Document{
		Workload:    workload,
		Class:       res.Class.String(),
		Notation:    res.Class.Notation(),
		Score:       res.Score,
		Exponent:    res.Exponent,
		Ambiguous:   res.Ambiguous,
		Candidates:  candidates(res.Candidates),
		Scores:      candidates(res.Scores),
		Anomalies:   res.Anomalies,
		Samples:     res.Samples,
		Fingerprint: strconv.FormatUint(res.Fingerprint(), 16),
	}
}

func candidates(scores []growth.Score) []Candidate {
	out := make([]Candidate, len(scores))
	for i, s := range scores {
		out[i] = Candidate{
			Class:    s.Class.String(),
			Notation: s.Class.Notation(),
			Error:    s.Error,
		}
	}

	return out
}

// Schema returns the JSON Schema of [Document].
func Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[Document](nil)
	if err != nil {
		return nil, err
	}

	s.Title = "bigo profile result"
	s.Description = "Empirical complexity classification of a profiling run."

	enum := make([]any, 0, len(growth.Classes()))
	for _, name := range growth.ClassNames() {
		enum = append(enum, name)
	}

	if p, ok := s.Properties["class"]; ok {
		p.Enum = enum
	}

	for _, list := range []string{"candidates", "scores"} {
		p, ok := s.Properties[list]
		if !ok || p.Items == nil {
			continue
		}

		if c, ok := p.Items.Properties["class"]; ok {
			c.Enum = enum
		}
	}

	return s, nil
}
