package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/bigo/growth"
	"go.jacobcolvin.com/bigo/report"
	"go.jacobcolvin.com/bigo/stringtest"
)

func linearResult(t *testing.T) *growth.Result {
	t.Helper()

	res, err := growth.Profile(func(n int) float64 { return float64(n) }, []int{10, 100, 1000})
	require.NoError(t, err)

	return res
}

func anomalousResult(t *testing.T) *growth.Result {
	t.Helper()

	res, err := growth.New().Fit([]growth.Sample{
		{Size: 10, Cost: 10},
		{Size: 20, Cost: 20},
		{Size: 30, Cost: 5},
		{Size: 40, Cost: 40},
	})
	require.NoError(t, err)

	return res
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    report.Format
		expectError bool
	}{
		"text":             {input: "text", expected: report.FormatText},
		"json":             {input: "json", expected: report.FormatJSON},
		"yaml":             {input: "yaml", expected: report.FormatYAML},
		"markdown":         {input: "markdown", expected: report.FormatMarkdown},
		"md alias":         {input: "md", expected: report.FormatMarkdown},
		"case insensitive": {input: "YAML", expected: report.FormatYAML},
		"unknown":          {input: "csv", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := report.ParseFormat(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, report.ErrUnknownFormat)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, f)
			}
		})
	}
}

func TestNewDocument(t *testing.T) {
	t.Parallel()

	res := linearResult(t)
	doc := report.NewDocument("linear", res)

	assert.Equal(t, "linear", doc.Workload)
	assert.Equal(t, "linear", doc.Class)
	assert.Equal(t, "O(n)", doc.Notation)
	assert.Equal(t, res.Samples, doc.Samples)
	assert.Len(t, doc.Scores, len(growth.Classes()))
	assert.NotEmpty(t, doc.Fingerprint)
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, report.FormatJSON, report.NewDocument("", linearResult(t))))

	var got map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "linear", got["class"])
	assert.NotContains(t, got, "workload")
	assert.NotContains(t, got, "anomalies")

	samples, ok := got["samples"].([]any)
	require.True(t, ok)
	require.Len(t, samples, 3)
	assert.JSONEq(t, `{"size": 10, "cost": 10}`, mustJSON(t, samples[0]))
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()

	out, err := json.Marshal(v)
	require.NoError(t, err)

	return string(out)
}

func TestWrite_YAMLReadBack(t *testing.T) {
	t.Parallel()

	res := anomalousResult(t)

	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, report.FormatYAML, report.NewDocument("", res)))
	assert.Contains(t, buf.String(), "class: linear")

	samples, err := report.ReadSamples(&buf)
	require.NoError(t, err)
	assert.Equal(t, res.Samples, samples)
}

func TestWrite_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, report.FormatText, report.NewDocument("demo", anomalousResult(t))))

	out := buf.String()
	assert.Contains(t, out, "workload:")
	assert.Contains(t, out, "Linear O(n)")
	assert.Contains(t, out, "anomaly")
	assert.Contains(t, out, "warning: cost 5 at size 30 is below cost 20 at smaller size 20")
}

func TestWrite_TextAmbiguous(t *testing.T) {
	t.Parallel()

	res, err := growth.Profile(func(n int) float64 { return float64(n) },
		[]int{1_000_000, 2_000_000, 4_000_000})
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, report.Write(&buf, report.FormatText, report.NewDocument("", res)))
	assert.Contains(t, buf.String(), "candidates:")
	assert.Contains(t, buf.String(), "linearithmic")
}

func TestWrite_Markdown(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		res      *growth.Result
		contains []string
	}{
		"clean run": {
			res:      linearResult(t),
			contains: []string{"# Growth Profile: linear", "## Scores", "## Samples", "Linearithmic"},
		},
		"run with anomalies": {
			res:      anomalousResult(t),
			contains: []string{"## Anomalies", "excluded", "WARNING"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			require.NoError(t, report.Write(&buf, report.FormatMarkdown, report.NewDocument("linear", tc.res)))

			for _, s := range tc.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := report.Write(&bytes.Buffer{}, report.Format("csv"), report.Document{})
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	s, err := report.Schema()
	require.NoError(t, err)

	assert.Equal(t, "object", s.Type)

	class, ok := s.Properties["class"]
	require.True(t, ok)
	assert.Len(t, class.Enum, len(growth.Classes()))
	assert.Contains(t, class.Enum, "linearithmic")

	assert.Contains(t, s.Properties, "samples")
	assert.Contains(t, s.Properties, "score")
}

func TestReadSamples(t *testing.T) {
	t.Parallel()

	want := []growth.Sample{{Size: 10, Cost: 1.5}, {Size: 20, Cost: 3}}

	tcs := map[string]struct {
		input       string
		want        []growth.Sample
		expectError bool
	}{
		"yaml list": {
			input: stringtest.Input(`
				- size: 10
				  cost: 1.5
				- size: 20
				  cost: 3
			`),
			want:  want,
		},
		"json list": {
			input: `[{"size": 10, "cost": 1.5}, {"size": 20, "cost": 3}]`,
			want:  want,
		},
		"document": {
			input: stringtest.Input(`
				class: linear
				samples:
				  - size: 10
				    cost: 1.5
				  - size: 20
				    cost: 3
			`),
			want:  want,
		},
		"empty": {
			input:       "  \n",
			expectError: true,
		},
		"no samples key": {
			input:       "class: linear\n",
			expectError: true,
		},
		"malformed": {
			input:       "samples: [1, 2",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := report.ReadSamples(strings.NewReader(tc.input))
			if tc.expectError {
				require.ErrorIs(t, err, report.ErrReadInput)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfig_ResolveFormat(t *testing.T) {
	t.Parallel()

	cfg := report.NewConfig()

	f, err := cfg.ResolveFormat(true)
	require.NoError(t, err)
	assert.Equal(t, report.FormatText, f)

	f, err = cfg.ResolveFormat(false)
	require.NoError(t, err)
	assert.Equal(t, report.FormatJSON, f)

	cfg.Format = "markdown"
	f, err = cfg.ResolveFormat(false)
	require.NoError(t, err)
	assert.Equal(t, report.FormatMarkdown, f)
}

func TestConfig_EmitFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")

	cfg := report.NewConfig()
	cfg.Output = path

	var stdout bytes.Buffer

	require.NoError(t, cfg.Emit(&stdout, report.FormatJSON, report.NewDocument("", linearResult(t))))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"class": "linear"`)
}
