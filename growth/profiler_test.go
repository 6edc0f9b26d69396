package growth_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/bigo/growth"
)

func TestProfile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		work      growth.Work
		sizes     []int
		want      growth.Class
		ambiguous bool
	}{
		"constant cost": {
			work:  func(int) float64 { return 7 },
			sizes: []int{10, 100, 1000},
			want:  growth.Constant,
		},
		"zero cost": {
			work:  func(int) float64 { return 0 },
			sizes: []int{10, 100, 1000},
			want:  growth.Constant,
		},
		"logarithmic cost": {
			work:  func(n int) float64 { return math.Log2(float64(n)) },
			sizes: []int{16, 256, 4096},
			want:  growth.Logarithmic,
		},
		"linear cost": {
			work:  func(n int) float64 { return float64(n) },
			sizes: []int{10, 100, 1000},
			want:  growth.Linear,
		},
		"linearithmic cost": {
			work:  func(n int) float64 { return float64(n) * math.Log2(float64(n)) },
			sizes: []int{10, 100, 1000},
			want:  growth.Linearithmic,
		},
		"quadratic cost": {
			work:  func(n int) float64 { return float64(n) * float64(n) },
			sizes: []int{10, 100, 1000},
			want:  growth.Quadratic,
		},
		"cubic cost": {
			work:  func(n int) float64 { return math.Pow(float64(n), 3) },
			sizes: []int{10, 100, 1000},
			want:  growth.Cubic,
		},
		"exponential cost": {
			work:  func(n int) float64 { return math.Exp2(float64(n)) },
			sizes: []int{10, 20, 30},
			want:  growth.Exponential,
		},
		"factorial cost": {
			work:  func(n int) float64 { return math.Gamma(float64(n) + 1) },
			sizes: []int{4, 6, 8},
			want:  growth.Factorial,
		},
		"scaled linear cost": {
			work:  func(n int) float64 { return 3 * float64(n) },
			sizes: []int{50, 500, 5000, 50000},
			want:  growth.Linear,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := growth.Profile(tc.work, tc.sizes)
			require.NoError(t, err)

			assert.Equal(t, tc.want, res.Class)
			assert.Equal(t, tc.ambiguous, res.Ambiguous)
			assert.InDelta(t, 0, res.Score, 1e-9)
			assert.Empty(t, res.Anomalies)
			require.Len(t, res.Samples, len(tc.sizes))
		})
	}
}

func TestProfile_LinearVersusLinearithmic(t *testing.T) {
	t.Parallel()

	sizes := []int{10, 100, 1000}

	linear, err := growth.Profile(func(n int) float64 { return float64(n) }, sizes)
	require.NoError(t, err)

	nlogn, err := growth.Profile(func(n int) float64 {
		return float64(n) * math.Log2(float64(n))
	}, sizes)
	require.NoError(t, err)

	assert.Equal(t, growth.Linear, linear.Class)
	assert.Equal(t, growth.Linearithmic, nlogn.Class)

	// The rival class must sit clearly outside the default tolerance.
	assert.Greater(t, linear.Scores[growth.Linearithmic].Error, growth.DefaultTolerance)
	assert.Greater(t, nlogn.Scores[growth.Linear].Error, growth.DefaultTolerance)
}

func TestProfile_AmbiguousCandidates(t *testing.T) {
	t.Parallel()

	// Doubling steps at large n cannot separate n from n log n.
	res, err := growth.Profile(func(n int) float64 { return float64(n) },
		[]int{1_000_000, 2_000_000, 4_000_000})
	require.NoError(t, err)

	assert.True(t, res.Ambiguous)
	assert.Equal(t, growth.Linear, res.Class)
	require.Len(t, res.Candidates, 2)
	assert.Equal(t, growth.Linear, res.Candidates[0].Class)
	assert.Equal(t, growth.Linearithmic, res.Candidates[1].Class)
	assert.InDelta(t, 0, res.Candidates[0].Error, 1e-9)
	assert.Greater(t, res.Candidates[1].Error, 0.0)
}

func TestProfile_ToleranceZero(t *testing.T) {
	t.Parallel()

	res, err := growth.Profile(func(n int) float64 { return float64(n) },
		[]int{1_000_000, 2_000_000, 4_000_000},
		growth.WithTolerance(0))
	require.NoError(t, err)

	assert.False(t, res.Ambiguous)
	assert.Equal(t, growth.Linear, res.Class)
}

func TestProfile_SimplicityBias(t *testing.T) {
	t.Parallel()

	// With a huge tolerance every class is a candidate and the lowest order
	// one is selected.
	res, err := growth.Profile(func(n int) float64 { return float64(n) * float64(n) },
		[]int{10, 100, 1000},
		growth.WithTolerance(1e6))
	require.NoError(t, err)

	assert.Equal(t, growth.Constant, res.Class)
	assert.Len(t, res.Candidates, len(growth.Classes()))
}

func TestProfile_Idempotent(t *testing.T) {
	t.Parallel()

	work := func(n int) float64 { return float64(n) * math.Log2(float64(n)) }
	sizes := []int{8, 64, 512, 4096}

	first, err := growth.Profile(work, sizes)
	require.NoError(t, err)

	second, err := growth.Profile(work, sizes)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
}

func TestProfile_SequentialOrder(t *testing.T) {
	t.Parallel()

	var calls []int

	sizes := []int{3, 9, 27, 81}

	_, err := growth.Profile(func(n int) float64 {
		calls = append(calls, n)

		return float64(n)
	}, sizes)
	require.NoError(t, err)

	assert.Equal(t, sizes, calls)
}

func TestProfile_InvalidInput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		sizes []int
	}{
		"repeated size": {
			sizes: []int{5, 5, 10},
		},
		"too few sizes": {
			sizes: []int{5, 10},
		},
		"no sizes": {
			sizes: nil,
		},
		"decreasing sizes": {
			sizes: []int{10, 5, 1},
		},
		"zero size": {
			sizes: []int{0, 5, 10},
		},
		"negative size": {
			sizes: []int{-1, 5, 10},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			called := false

			res, err := growth.Profile(func(n int) float64 {
				called = true

				return float64(n)
			}, tc.sizes)

			require.ErrorIs(t, err, growth.ErrInvalidInput)
			assert.Nil(t, res)
			assert.False(t, called, "work must not run for invalid sizes")
		})
	}
}

func TestProfile_MinSamples(t *testing.T) {
	t.Parallel()

	p := growth.New(growth.WithMinSamples(5))

	_, err := p.Profile(func(n int) float64 { return float64(n) }, []int{1, 2, 3, 4})
	require.ErrorIs(t, err, growth.ErrInvalidInput)

	// Lower values cannot undercut the floor.
	p = growth.New(growth.WithMinSamples(1))

	_, err = p.Profile(func(n int) float64 { return float64(n) }, []int{1, 2})
	require.ErrorIs(t, err, growth.ErrInvalidInput)
}

func TestFit_Anomalies(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		samples      []growth.Sample
		wantIndexes  []int
		wantContains string
		want         growth.Class
	}{
		"dip below earlier sample": {
			samples: []growth.Sample{
				{Size: 10, Cost: 10},
				{Size: 20, Cost: 20},
				{Size: 30, Cost: 5},
				{Size: 40, Cost: 40},
				{Size: 50, Cost: 50},
			},
			wantIndexes:  []int{2},
			wantContains: "below cost 20 at smaller size 20",
			want:         growth.Linear,
		},
		"spike above later samples": {
			samples: []growth.Sample{
				{Size: 100, Cost: 100},
				{Size: 200, Cost: 200},
				{Size: 300, Cost: 9000},
				{Size: 400, Cost: 400},
				{Size: 800, Cost: 800},
			},
			wantIndexes:  []int{2},
			wantContains: "exceeds cost 400 at larger size 400",
			want:         growth.Linear,
		},
		"leading spike": {
			samples: []growth.Sample{
				{Size: 1, Cost: 5000},
				{Size: 10, Cost: 10},
				{Size: 100, Cost: 100},
				{Size: 1000, Cost: 1000},
				{Size: 10000, Cost: 10000},
			},
			wantIndexes:  []int{0},
			wantContains: "exceeds cost 10 at larger size 10",
			want:         growth.Linear,
		},
		"early sample above longer run": {
			samples: []growth.Sample{
				{Size: 10, Cost: 10},
				{Size: 100, Cost: 5},
				{Size: 1000, Cost: 6},
				{Size: 10000, Cost: 7},
			},
			wantIndexes:  []int{0},
			wantContains: "cost 10 at size 10 exceeds cost 5 at larger size 100",
			want:         growth.Constant,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := growth.New().Fit(tc.samples)
			require.NoError(t, err)

			assert.Equal(t, tc.want, res.Class)
			assert.True(t, res.HasAnomalies())

			var got []int
			for _, a := range res.Anomalies {
				got = append(got, a.Index)
				assert.Equal(t, tc.samples[a.Index], a.Sample)
			}

			assert.Equal(t, tc.wantIndexes, got)
			assert.Contains(t, res.Anomalies[0].Message, tc.wantContains)

			// Raw samples are reported untouched.
			assert.Equal(t, tc.samples, res.Samples)
		})
	}
}

func TestFit_InsufficientData(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts          []growth.Option
		samples       []growth.Sample
		wantAnomalies []int
		wantRetained  int
		wantRequired  int
	}{
		"every later cost lower": {
			samples: []growth.Sample{
				{Size: 10, Cost: 50},
				{Size: 100, Cost: 30},
				{Size: 1000, Cost: 10},
			},
			wantAnomalies: []int{1, 2},
			wantRetained:  1,
			wantRequired:  growth.MinSamples,
		},
		"alternating dips leave two samples": {
			samples: []growth.Sample{
				{Size: 10, Cost: 100},
				{Size: 100, Cost: 1},
				{Size: 1000, Cost: 1000},
				{Size: 10000, Cost: 2},
			},
			wantAnomalies: []int{1, 3},
			wantRetained:  2,
			wantRequired:  growth.MinSamples,
		},
		"raised minimum": {
			opts: []growth.Option{growth.WithMinSamples(4)},
			samples: []growth.Sample{
				{Size: 10, Cost: 10},
				{Size: 100, Cost: 100},
				{Size: 1000, Cost: 1},
				{Size: 10000, Cost: 10000},
			},
			wantAnomalies: []int{2},
			wantRetained:  3,
			wantRequired:  4,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := growth.New(tc.opts...).Fit(tc.samples)
			require.ErrorIs(t, err, growth.ErrInsufficientData)
			assert.Nil(t, res)

			var dataErr *growth.InsufficientDataError

			require.ErrorAs(t, err, &dataErr)
			assert.Equal(t, tc.samples, dataErr.Samples)
			assert.Equal(t, tc.wantRetained, dataErr.Retained)
			assert.Equal(t, tc.wantRequired, dataErr.Required)

			var got []int
			for _, a := range dataErr.Anomalies {
				got = append(got, a.Index)
				assert.NotEmpty(t, a.Message)
			}

			assert.Equal(t, tc.wantAnomalies, got)
		})
	}
}

func TestFit_ZeroCost(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		samples []growth.Sample
		want    growth.Class
	}{
		"rise from zero is growth": {
			samples: []growth.Sample{
				{Size: 10, Cost: 0},
				{Size: 100, Cost: 0},
				{Size: 1000, Cost: 5000},
			},
			want: growth.Quadratic,
		},
		"leading zero before quadratic run": {
			samples: []growth.Sample{
				{Size: 1, Cost: 0},
				{Size: 10, Cost: 100},
				{Size: 100, Cost: 10000},
				{Size: 1000, Cost: 1000000},
			},
			want: growth.Quadratic,
		},
		"all zero": {
			samples: []growth.Sample{
				{Size: 10, Cost: 0},
				{Size: 100, Cost: 0},
				{Size: 1000, Cost: 0},
			},
			want: growth.Constant,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := growth.New().Fit(tc.samples)
			require.NoError(t, err)

			assert.Equal(t, tc.want, res.Class)
			assert.False(t, res.Ambiguous)
			assert.Empty(t, res.Anomalies)

			if tc.want != growth.Constant {
				assert.Positive(t, res.Scores[growth.Constant].Error)
			}
		})
	}
}

func TestFit_InvalidCost(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		cost float64
	}{
		"negative": {cost: -1},
		"nan":      {cost: math.NaN()},
		"inf":      {cost: math.Inf(1)},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := growth.New().Fit([]growth.Sample{
				{Size: 1, Cost: 1},
				{Size: 2, Cost: tc.cost},
				{Size: 3, Cost: 3},
			})
			require.ErrorIs(t, err, growth.ErrInvalidInput)
		})
	}
}

func TestResult_Exponent(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		work growth.Work
		want float64
	}{
		"linear":    {work: func(n int) float64 { return float64(n) }, want: 1},
		"quadratic": {work: func(n int) float64 { return float64(n * n) }, want: 2},
		"cubic":     {work: func(n int) float64 { return math.Pow(float64(n), 3) }, want: 3},
		"constant":  {work: func(int) float64 { return 1 }, want: 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := growth.Profile(tc.work, []int{10, 100, 1000})
			require.NoError(t, err)
			assert.InDelta(t, tc.want, res.Exponent, 1e-9)
		})
	}
}

func TestResult_Scores(t *testing.T) {
	t.Parallel()

	res, err := growth.Profile(func(n int) float64 { return float64(n) }, []int{10, 100, 1000})
	require.NoError(t, err)

	require.Len(t, res.Scores, len(growth.Classes()))

	for i, s := range res.Scores {
		assert.Equal(t, growth.Class(i), s.Class)
	}
}

func TestResult_FingerprintDiffers(t *testing.T) {
	t.Parallel()

	sizes := []int{10, 100, 1000}

	a, err := growth.Profile(func(n int) float64 { return float64(n) }, sizes)
	require.NoError(t, err)

	b, err := growth.Profile(func(n int) float64 { return float64(n * n) }, sizes)
	require.NoError(t, err)

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
