package corrector

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func identity(word string) string { return word }

func TestChoose_BestScoreWins(t *testing.T) {
	model := fakeModel{
		{"çok", "kimetli"}:  0.1,
		{"çok", "kıymetli"}: 0.5,
		{"kıymetli", "bir"}: 0.2,
	}
	d := NewDisambiguator(model, 0, identity, nil)
	w := newWindow([]string{"çok", "kımetli", "bir"}, 1)
	pool := []Candidate{{Text: "kimetli", Operator: SpellCheck}, {Text: "kıymetli", Operator: SpellCheck}}

	got := d.Choose(w, Roots{Previous: "çok", Next: "bir"}, pool)
	assert.Equal(t, Candidate{Text: "kıymetli", Operator: SpellCheck}, got.Candidate)
	assert.Equal(t, "kıymetli", got.Root)
	assert.InDelta(t, 0.5, got.Score, 1e-9)
}

func TestChoose_TiesKeepFirst(t *testing.T) {
	model := fakeModel{{"a", "x"}: 0.3, {"a", "y"}: 0.3}
	d := NewDisambiguator(model, 0, identity, nil)
	w := newWindow([]string{"a", "z"}, 1)
	pool := []Candidate{{Text: "x", Operator: SpellCheck}, {Text: "y", Operator: SpellCheck}}

	assert.Equal(t, "x", d.Choose(w, Roots{Previous: "a"}, pool).Candidate.Text)
}

func TestChoose_ThresholdKeepsOriginal(t *testing.T) {
	model := fakeModel{{"a", "x"}: 0.3, {"a", "y"}: 0.4}
	d := NewDisambiguator(model, 0.5, identity, nil)
	w := newWindow([]string{"a", "z"}, 1)
	pool := []Candidate{{Text: "x", Operator: SpellCheck}, {Text: "y", Operator: SpellCheck}}

	got := d.Choose(w, Roots{Previous: "a"}, pool)
	assert.Equal(t, Candidate{Text: "z", Operator: NoChange}, got.Candidate)
	assert.Equal(t, "z", got.Root)
	assert.Equal(t, 0.5, got.Score)
}

func TestChoose_SingleCandidateAccepted(t *testing.T) {
	d := NewDisambiguator(fakeModel{}, 0.5, identity, nil)
	w := newWindow([]string{"kim", "se"}, 1)

	got := d.Choose(w, Roots{Previous: "kim"}, []Candidate{{Text: "kimse", Operator: BackwardMerge}})
	assert.Equal(t, BackwardMerge, got.Candidate.Operator)
	assert.Equal(t, "kimse", got.Root)
}

func TestChoose_EmptyPool(t *testing.T) {
	d := NewDisambiguator(fakeModel{}, 0, identity, nil)
	got := d.Choose(newWindow([]string{"xyz"}, 0), Roots{}, nil)
	assert.Equal(t, NoChange, got.Candidate.Operator)
	assert.Equal(t, "xyz", got.Candidate.Text)
}

func TestChoose_MergeProjections(t *testing.T) {
	w := newWindow([]string{"çok", "kim", "se", "geldi", "dün"}, 2)

	t.Run("backward merge looks two words back", func(t *testing.T) {
		model := fakeModel{{"çok", "kimse"}: 0.4, {"kim", "sene"}: 0.3}
		d := NewDisambiguator(model, 0, identity, nil)
		pool := []Candidate{{Text: "sene", Operator: SpellCheck}, {Text: "kimse", Operator: BackwardMerge}}
		got := d.Choose(w, Roots{Previous: "kim", Next: "geldi"}, pool)
		assert.Equal(t, "kimse", got.Candidate.Text)
	})

	t.Run("forward merge looks two words ahead", func(t *testing.T) {
		model := fakeModel{{"segeldi", "dün"}: 0.4, {"segeldi", "geldi"}: 0.9}
		d := NewDisambiguator(model, 0, identity, nil)
		pool := []Candidate{{Text: "segeldi", Operator: ForwardMerge}, {Text: "sen", Operator: SpellCheck}}
		got := d.Choose(w, Roots{Previous: "kim", Next: "geldi"}, pool)
		assert.Equal(t, "segeldi", got.Candidate.Text)
		assert.InDelta(t, 0.4, got.Score, 1e-9)
	})

	t.Run("split scores outer fragments", func(t *testing.T) {
		model := fakeModel{{"kim", "bir"}: 0.2, {"şey", "geldi"}: 0.7}
		d := NewDisambiguator(model, 0, identity, nil)
		pool := []Candidate{{Text: "bir", Operator: SpellCheck}, {Text: "bir şey", Operator: Split}}
		got := d.Choose(w, Roots{Previous: "kim", Next: "geldi"}, pool)
		assert.Equal(t, "bir şey", got.Candidate.Text)
		assert.Equal(t, "şey", got.Root)
		assert.InDelta(t, 0.7, got.Score, 1e-9)
	})
}

func TestChoose_NoModelPicksFirst(t *testing.T) {
	d := NewDisambiguator(nil, 0, identity, nil)
	pool := []Candidate{{Text: "x", Operator: SpellCheck}, {Text: "y", Operator: SpellCheck}}
	assert.Equal(t, "x", d.Choose(newWindow([]string{"z"}, 0), Roots{}, pool).Candidate.Text)
}

func TestChoose_RandomIsReproducible(t *testing.T) {
	pool := []Candidate{
		{Text: "a", Operator: SpellCheck},
		{Text: "b", Operator: SpellCheck},
		{Text: "c", Operator: SpellCheck},
		{Text: "d", Operator: SpellCheck},
	}
	w := newWindow([]string{"z"}, 0)
	run := func() []string {
		d := NewDisambiguator(fakeModel{}, 0, identity, rand.New(rand.NewPCG(7, 7)))
		var picks []string
		for i := 0; i < 20; i++ {
			picks = append(picks, d.Choose(w, Roots{}, pool).Candidate.Text)
		}
		return picks
	}
	first := run()
	assert.Equal(t, first, run())
	for _, p := range first {
		assert.Contains(t, []string{"a", "b", "c", "d"}, p)
	}
}
