package lasagna

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinji-kodama/lasagna-timer/internal/model"
)

func TestOvenTime(t *testing.T) {
	assert.Equal(t, 40, OvenTime())
}

// TestRemainingOvenTime covers the normal case plus the unvalidated
// edges: zero, exactly done, and past the expected time.
func TestRemainingOvenTime(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    int
	}{
		{name: "just put in", minutes: 0, want: 40},
		{name: "thirty minutes in", minutes: 30, want: 10},
		{name: "exactly done", minutes: 40, want: 0},
		{name: "past expected time is negative", minutes: 55, want: -15},
		{name: "negative input is not rejected", minutes: -5, want: 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingOvenTime(tt.minutes))
		})
	}
}

func TestPreparationTime(t *testing.T) {
	tests := []struct {
		name   string
		layers int
		opts   []Option
		want   int
	}{
		{name: "default two minutes per layer", layers: 2, want: 4},
		{name: "explicit time per layer", layers: 4, opts: []Option{WithTimePerLayer(3)}, want: 12},
		{name: "explicit default matches implicit", layers: 5, opts: []Option{WithTimePerLayer(2)}, want: 10},
		{name: "zero layers", layers: 0, want: 0},
		{name: "negative layers", layers: -3, want: -6},
		{name: "zero time per layer", layers: 7, opts: []Option{WithTimePerLayer(0)}, want: 0},
		{name: "last option wins", layers: 3, opts: []Option{WithTimePerLayer(5), WithTimePerLayer(1)}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PreparationTime(tt.layers, tt.opts...))
		})
	}
}

func TestElapsedTime(t *testing.T) {
	tests := []struct {
		name    string
		layers  int
		minutes int
		want    int
	}{
		{name: "three layers twenty minutes", layers: 3, minutes: 20, want: 26},
		{name: "nothing done yet", layers: 0, minutes: 0, want: 0},
		{name: "prep only", layers: 6, minutes: 0, want: 12},
		{name: "past oven time", layers: 1, minutes: 50, want: 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElapsedTime(tt.layers, tt.minutes))
		})
	}
}

// TestFormulas checks the closed-form relationships over a grid of inputs.
func TestFormulas(t *testing.T) {
	for n := -5; n <= 12; n++ {
		for m := -10; m <= 60; m += 7 {
			assert.Equal(t, 40-m, RemainingOvenTime(m))
			assert.Equal(t, n*2, PreparationTime(n))
			assert.Equal(t, m+PreparationTime(n), ElapsedTime(n, m))
			for tpl := -1; tpl <= 4; tpl++ {
				assert.Equal(t, n*tpl, PreparationTime(n, WithTimePerLayer(tpl)))
			}
		}
	}
}

func TestPlan(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r := Plan(3, 20)
		assert.Equal(t, model.Report{
			Layers:             3,
			TimePerLayer:       2,
			PreparationMinutes: 6,
			OvenMinutes:        40,
			MinutesInOven:      20,
			RemainingMinutes:   20,
			ElapsedMinutes:     26,
			Status:             model.StatusBaking,
		}, r)
		assert.Equal(t, ElapsedTime(3, 20), r.ElapsedMinutes)
	})

	t.Run("custom time per layer flows into elapsed", func(t *testing.T) {
		r := Plan(4, 40, WithTimePerLayer(3))
		assert.Equal(t, 3, r.TimePerLayer)
		assert.Equal(t, 12, r.PreparationMinutes)
		assert.Equal(t, 0, r.RemainingMinutes)
		assert.Equal(t, 52, r.ElapsedMinutes)
		assert.Equal(t, model.StatusDone, r.Status)
	})

	t.Run("overdone", func(t *testing.T) {
		r := Plan(1, 45)
		assert.Equal(t, -5, r.RemainingMinutes)
		assert.Equal(t, model.StatusOverdone, r.Status)
	})
}

// TestConcurrentCalls exercises the functions from many goroutines; run
// with -race to confirm nothing is shared.
func TestConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.Equal(t, i+2*i, ElapsedTime(i, i))
			assert.Equal(t, i*3, PreparationTime(i, WithTimePerLayer(3)))
		}(i)
	}
	wg.Wait()
}
