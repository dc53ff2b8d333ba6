package lasagna

import "github.com/shinji-kodama/lasagna-timer/internal/model"

const (
	// ExpectedOvenTime is how long every lasagna bakes, in minutes.
	ExpectedOvenTime = 40

	// DefaultTimePerLayer is the preparation time per layer, in minutes,
	// used when no WithTimePerLayer option is given.
	DefaultTimePerLayer = 2
)

// options holds the optional parameters of PreparationTime and Plan.
type options struct {
	timePerLayer int
}

// Option overrides a default used by PreparationTime and Plan.
type Option func(*options)

// WithTimePerLayer sets the preparation minutes spent on each layer.
// Zero and negative values are used as given.
func WithTimePerLayer(minutes int) Option {
	return func(o *options) {
		o.timePerLayer = minutes
	}
}

func newOptions(opts []Option) options {
	o := options{timePerLayer: DefaultTimePerLayer}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// OvenTime returns the expected oven time in minutes.
func OvenTime() int {
	return ExpectedOvenTime
}

// RemainingOvenTime returns how many minutes the lasagna still needs to
// bake, given the minutes it has already spent in the oven.
func RemainingOvenTime(actualMinutesInOven int) int {
	return OvenTime() - actualMinutesInOven
}

// PreparationTime returns the preparation estimate for the given number of
// layers. Each layer takes DefaultTimePerLayer minutes unless overridden
// with WithTimePerLayer.
func PreparationTime(numberOfLayers int, opts ...Option) int {
	o := newOptions(opts)
	return numberOfLayers * o.timePerLayer
}

// ElapsedTime returns the total minutes spent so far: preparation at the
// default time per layer plus the minutes already spent in the oven.
func ElapsedTime(numberOfLayers, actualMinutesInOven int) int {
	return actualMinutesInOven + PreparationTime(numberOfLayers)
}

// Plan computes every estimate for one lasagna in a single Report.
// The report's elapsed minutes use the same time per layer as its
// preparation minutes, so the report is internally consistent even when
// WithTimePerLayer is given.
func Plan(numberOfLayers, actualMinutesInOven int, opts ...Option) model.Report {
	o := newOptions(opts)
	prep := PreparationTime(numberOfLayers, opts...)
	remaining := RemainingOvenTime(actualMinutesInOven)

	return model.Report{
		Layers:             numberOfLayers,
		TimePerLayer:       o.timePerLayer,
		PreparationMinutes: prep,
		OvenMinutes:        OvenTime(),
		MinutesInOven:      actualMinutesInOven,
		RemainingMinutes:   remaining,
		ElapsedMinutes:     actualMinutesInOven + prep,
		Status:             model.BakeStatusFor(remaining),
	}
}
