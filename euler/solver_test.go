package euler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulerwalk/euler"
	"github.com/katalvlaran/eulerwalk/incidence"
	"github.com/katalvlaran/eulerwalk/samples"
)

// build is a test helper around incidence.Build with validation on.
func build(t *testing.T, entries ...incidence.Entry) *incidence.Graph {
	t.Helper()
	g, err := incidence.Build(entries, incidence.WithValidation())
	require.NoError(t, err)

	return g
}

func entry(v string, edges ...string) incidence.Entry {
	return incidence.Entry{Vertex: v, Edges: edges}
}

func TestSearch_NilGraph(t *testing.T) {
	res, err := euler.Search(nil, euler.Circuit)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, euler.ErrGraphNil)

	sols, err := euler.FindPaths(nil, euler.AnyPath)
	assert.Nil(t, sols)
	assert.ErrorIs(t, err, euler.ErrGraphNil)
}

func TestSearch_InvalidMode(t *testing.T) {
	_, err := euler.Search(samples.Square(), euler.Mode(7))
	assert.ErrorIs(t, err, euler.ErrInvalidMode)
}

// Scenario A: every rotation and both directions of the square are reported.
func TestFindPaths_SquareCircuits(t *testing.T) {
	sols, err := euler.FindPaths(samples.Square(), euler.Circuit)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"a e1 b e2 c e3 d e4 a",
		"a e4 d e3 c e2 b e1 a",
		"b e1 a e4 d e3 c e2 b",
		"b e2 c e3 d e4 a e1 b",
		"c e2 b e1 a e4 d e3 c",
		"c e3 d e4 a e1 b e2 c",
		"d e3 c e2 b e1 a e4 d",
		"d e4 a e1 b e2 c e3 d",
	}, euler.FormatAll(sols))
}

// Scenario B: bow-tie graph, all degrees even.
func TestFindPaths_TwoTrianglesCircuits(t *testing.T) {
	res, err := euler.Search(samples.TwoTriangles(), euler.Circuit)
	require.NoError(t, err)
	require.Len(t, res.Solutions, 24)
	assert.Equal(t, 8, res.DeadEnds)
	assert.Equal(t, 132, res.Steps)
	assert.False(t, res.Truncated)

	got := res.Strings()
	assert.Equal(t, []string{
		"a e1 e e2 b e4 d e5 c e6 b e3 a",
		"a e1 e e2 b e6 c e5 d e4 b e3 a",
		"a e3 b e4 d e5 c e6 b e2 e e1 a",
		"a e3 b e6 c e5 d e4 b e2 e e1 a",
	}, got[:4])
	assert.Equal(t, "e e2 b e6 c e5 d e4 b e3 a e1 e", got[len(got)-1])

	perStart := map[string]int{}
	for _, s := range res.Solutions {
		perStart[s.Start]++
	}
	assert.Equal(t, map[string]int{"a": 4, "b": 8, "c": 4, "d": 4, "e": 4}, perStart)
}

// Scenario C: four odd vertices, no walk in either mode.
func TestFindPaths_Koenigsberg(t *testing.T) {
	for _, mode := range []euler.Mode{euler.AnyPath, euler.Circuit} {
		res, err := euler.Search(samples.Koenigsberg(), mode)
		require.NoError(t, err)
		assert.Empty(t, res.Solutions, mode.String())
		assert.NotNil(t, res.Solutions)
		assert.Equal(t, 372, res.DeadEnds, mode.String())
		assert.Equal(t, 820, res.Steps, mode.String())
	}
}

// Scenario D: exactly two odd vertices, trails only from a and b.
func TestFindPaths_TwoOddVertices(t *testing.T) {
	g := samples.TwoOddVertices()

	paths, err := euler.Search(g, euler.AnyPath)
	require.NoError(t, err)
	require.Len(t, paths.Solutions, 32)
	assert.Equal(t, 124, paths.DeadEnds)
	assert.Equal(t, 602, paths.Steps)
	assert.Equal(t, "a 1 b 2 c 3 d 4 g 5 e 6 f 7 a 8 g 9 b", paths.Solutions[0].String())
	assert.Equal(t, "a 1 b 2 c 3 d 4 g 8 a 7 f 6 e 5 g 9 b", paths.Solutions[1].String())
	assert.Equal(t, "b 9 g 8 a 7 f 6 e 5 g 4 d 3 c 2 b 1 a", paths.Solutions[31].String())
	for _, s := range paths.Solutions {
		assert.Contains(t, []string{"a", "b"}, s.Start)
		assert.False(t, s.IsCircuit())
	}

	circuits, err := euler.Search(g, euler.Circuit)
	require.NoError(t, err)
	assert.Empty(t, circuits.Solutions)
	assert.Equal(t, 156, circuits.DeadEnds)
}

func TestFindPaths_Line(t *testing.T) {
	g := build(t, entry("a", "e1"), entry("b", "e1", "e2"), entry("c", "e2"))

	paths, err := euler.FindPaths(g, euler.AnyPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"a e1 b e2 c", "c e2 b e1 a"}, euler.FormatAll(paths))

	circuits, err := euler.FindPaths(g, euler.Circuit)
	require.NoError(t, err)
	assert.Empty(t, circuits)
}

// In AnyPath mode, circuits are paths too.
func TestFindPaths_CircuitsAreAlsoPaths(t *testing.T) {
	g := samples.TwoTriangles()
	paths, err := euler.FindPaths(g, euler.AnyPath)
	require.NoError(t, err)
	circuits, err := euler.FindPaths(g, euler.Circuit)
	require.NoError(t, err)
	assert.Equal(t, euler.FormatAll(circuits), euler.FormatAll(paths))
}

func TestFindPaths_Properties(t *testing.T) {
	for _, name := range samples.Names() {
		g, err := samples.Lookup(name)
		require.NoError(t, err)
		for _, mode := range []euler.Mode{euler.AnyPath, euler.Circuit} {
			sols, err := euler.FindPaths(g, mode)
			require.NoError(t, err)
			for _, s := range sols {
				// Each edge once, each edge joins its neighbours, circuits close.
				require.NoError(t, euler.Verify(g, s.Trail, mode), "%s/%s: %s", name, mode, s)
				assert.Equal(t, g.EdgeCount(), s.Len())

				// Formatting from (start, edges) alone reproduces the record.
				text, err := euler.Format(g, s.Start, s.Edges)
				require.NoError(t, err)
				assert.Equal(t, s.String(), text)
			}
		}
	}
}

func TestFindPaths_Idempotent(t *testing.T) {
	g := samples.TwoOddVertices()
	first, err := euler.FindPaths(g, euler.AnyPath)
	require.NoError(t, err)
	second, err := euler.FindPaths(g, euler.AnyPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// Reordering an incidence list changes discovery order, never the set.
func TestFindPaths_IncidenceOrderDrivesDiscovery(t *testing.T) {
	g1 := build(t, entry("a", "e1", "e4"), entry("b", "e1", "e2"), entry("c", "e2", "e3"), entry("d", "e3", "e4"))
	g2 := build(t, entry("a", "e4", "e1"), entry("b", "e1", "e2"), entry("c", "e2", "e3"), entry("d", "e3", "e4"))

	s1, err := euler.FindPaths(g1, euler.Circuit)
	require.NoError(t, err)
	s2, err := euler.FindPaths(g2, euler.Circuit)
	require.NoError(t, err)

	assert.Equal(t, "a e1 b e2 c e3 d e4 a", s1[0].String())
	assert.Equal(t, "a e4 d e3 c e2 b e1 a", s2[0].String())
	assert.ElementsMatch(t, euler.FormatAll(s1), euler.FormatAll(s2))
}

// Parallel edges (a multigraph) are distinct edges.
func TestFindPaths_ParallelEdges(t *testing.T) {
	g := build(t, entry("x", "p", "q"), entry("y", "p", "q"))
	sols, err := euler.FindPaths(g, euler.Circuit)
	require.NoError(t, err)
	assert.Equal(t, []string{"x p y q x", "x q y p x", "y p x q y", "y q x p y"}, euler.FormatAll(sols))
}

func TestFindPaths_Disconnected(t *testing.T) {
	// Two separate 2-cycles: every vertex even, but no single walk covers both.
	g := build(t, entry("a", "p", "q"), entry("b", "p", "q"), entry("c", "r", "s"), entry("d", "r", "s"))
	res, err := euler.Search(g, euler.Circuit)
	require.NoError(t, err)
	assert.Empty(t, res.Solutions)
	assert.Positive(t, res.DeadEnds)
}

func TestSearch_MaxSolutions(t *testing.T) {
	res, err := euler.Search(samples.Square(), euler.Circuit, euler.WithMaxSolutions(3))
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Equal(t, []string{
		"a e1 b e2 c e3 d e4 a",
		"a e4 d e3 c e2 b e1 a",
		"b e1 a e4 d e3 c e2 b",
	}, res.Strings())

	res, err = euler.Search(samples.Square(), euler.Circuit, euler.WithMaxSolutions(0))
	require.NoError(t, err)
	assert.False(t, res.Truncated)
	assert.Len(t, res.Solutions, 8)
}

func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := euler.Search(samples.TwoOddVertices(), euler.AnyPath, euler.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Solutions)
}

func TestSearch_CancelFromTracer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracer := euler.TracerFuncs{Solution: func(euler.Solution) { cancel() }}
	res, err := euler.Search(samples.Square(), euler.Circuit, euler.WithContext(ctx), euler.WithTracer(tracer))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Len(t, res.Solutions, 1, "partial result is kept")
}

func TestSearch_MalformedGraphPropagates(t *testing.T) {
	// e1 is shared by three vertices; only detectable when walked.
	g, err := incidence.Build([]incidence.Entry{
		entry("a", "e1"),
		entry("b", "e1"),
		entry("c", "e1"),
	})
	require.NoError(t, err)

	_, err = euler.Search(g, euler.AnyPath)
	assert.ErrorIs(t, err, incidence.ErrAmbiguousEdge)

	g, err = incidence.Build([]incidence.Entry{entry("a", "e1", "e2"), entry("b", "e1")})
	require.NoError(t, err)
	_, err = euler.Search(g, euler.AnyPath)
	assert.ErrorIs(t, err, incidence.ErrDanglingEdge)
}

func TestSearch_TracerEvents(t *testing.T) {
	var starts, solutions, deadEnds, backtracks, backtracksFound int
	tracer := euler.TracerFuncs{
		Start:    func(string) { starts++ },
		Solution: func(euler.Solution) { solutions++ },
		DeadEnd: func(v string, tr euler.Trail) {
			deadEnds++
			assert.Equal(t, v, tr.End())
		},
		Backtrack: func(tr euler.Trail, found bool) {
			backtracks++
			if found {
				backtracksFound++
			}
			assert.Positive(t, tr.Len())
		},
	}

	res, err := euler.Search(samples.TwoTriangles(), euler.Circuit, euler.WithTracer(tracer))
	require.NoError(t, err)
	assert.Equal(t, 5, starts)
	assert.Equal(t, len(res.Solutions), solutions)
	assert.Equal(t, res.DeadEnds, deadEnds)
	assert.Equal(t, res.Steps, backtracks, "every step is undone")
	assert.Positive(t, backtracksFound)
}

func TestSearch_TracerTrailIsDetached(t *testing.T) {
	var kept []euler.Trail
	tracer := euler.TracerFuncs{Backtrack: func(tr euler.Trail, _ bool) { kept = append(kept, tr) }}
	_, err := euler.Search(samples.Square(), euler.Circuit, euler.WithTracer(tracer))
	require.NoError(t, err)

	// The first undo happens at the end of the first full circuit.
	require.NotEmpty(t, kept)
	assert.Equal(t, "a e1 b e2 c e3 d e4 a", kept[0].String())
}

func TestNopTracer(t *testing.T) {
	res, err := euler.Search(samples.Square(), euler.Circuit, euler.WithTracer(euler.NopTracer{}))
	require.NoError(t, err)
	assert.Len(t, res.Solutions, 8)
}

func TestWithTracer_NilPanics(t *testing.T) {
	assert.Panics(t, func() { euler.WithTracer(nil) })
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]euler.Mode{
		"path": euler.AnyPath, "Trail": euler.AnyPath, " any ": euler.AnyPath,
		"circuit": euler.Circuit, "CYCLE": euler.Circuit,
	} {
		got, err := euler.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := euler.ParseMode("tour")
	assert.ErrorIs(t, err, euler.ErrInvalidMode)
	assert.Equal(t, "Mode(9)", euler.Mode(9).String())
}

func TestMode_Text(t *testing.T) {
	b, err := euler.Circuit.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "circuit", string(b))

	var m euler.Mode
	require.NoError(t, m.UnmarshalText([]byte("path")))
	assert.Equal(t, euler.AnyPath, m)

	_, err = euler.Mode(-1).MarshalText()
	assert.ErrorIs(t, err, euler.ErrInvalidMode)
}
