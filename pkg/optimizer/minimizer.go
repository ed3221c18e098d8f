package optimizer

import (
	"math"
	"math/rand"
)

// MultiStartCoordinateDescent is a derivative-free global search: it seeds
// a fixed number of start points across the bounds (corners, midpoint, and
// a handful of points drawn from a seeded math/rand so runs are
// deterministic — no wall-clock/entropy source), then runs
// coordinate-descent-with-shrinking-step from each, keeping the best
// optimum found across all starts.
//
// This stands in for the reference implementation's simplicial-homology
// global optimizer without pulling in a numerical-optimization dependency.
type MultiStartCoordinateDescent struct {
	// Starts is the number of additional random start points beyond the
	// deterministic corner/midpoint seeds. Defaults to 6 if zero.
	Starts int

	// Iterations is the number of coordinate sweeps run per start.
	// Defaults to 25 if zero.
	Iterations int

	// Seed seeds the random start points. Two Minimizers with the same
	// Seed searching the same objective/bounds return identical results.
	Seed int64
}

// Minimize implements Minimizer.
func (m MultiStartCoordinateDescent) Minimize(f func([]float64) float64, bounds []Bound) (bool, []float64, float64) {
	if len(bounds) == 0 {
		return true, nil, f(nil)
	}

	starts := m.Starts
	if starts == 0 {
		starts = 6
	}
	iterations := m.Iterations
	if iterations == 0 {
		iterations = 25
	}

	rng := rand.New(rand.NewSource(m.Seed))

	var bestX []float64
	bestFx := math.Inf(1)

	tryStart := func(x []float64) {
		x = coordinateDescent(f, bounds, x, iterations)
		fx := f(x)
		if fx < bestFx {
			bestFx = fx
			bestX = x
		}
	}

	tryStart(corner(bounds, false))
	tryStart(corner(bounds, true))
	tryStart(midpoint(bounds))

	for i := 0; i < starts; i++ {
		tryStart(randomPoint(bounds, rng))
	}

	if x, fx, ok := gridSearch(f, bounds); ok && fx < bestFx {
		bestFx = fx
		bestX = x
	}

	if bestX == nil {
		return false, nil, 0
	}

	return true, bestX, bestFx
}

// gridCap bounds the total number of points gridSearch will enumerate, so a
// handful of interpretations with many nomination tuples can't blow up
// search time; beyond the cap the coordinate-descent starts above carry the
// search alone.
const gridCap = 200000

// gridSearch exhaustively evaluates every integer coordinate combination
// within bounds. Every interpretation's bound has an integer width equal to
// its nomination-tuple count plus the NoMatch fallback slot, so the true
// optimum always sits on this grid; coordinate descent alone can miss it
// when the objective has many shallow local minima close together.
func gridSearch(f func([]float64) float64, bounds []Bound) ([]float64, float64, bool) {
	widths := make([]int, len(bounds))
	total := 1
	for i, b := range bounds {
		w := int(math.Floor(b.Hi)) + 1
		if w < 1 {
			w = 1
		}
		widths[i] = w
		total *= w
		if total > gridCap {
			return nil, 0, false
		}
	}

	x := make([]float64, len(bounds))
	var bestX []float64
	bestFx := math.Inf(1)

	var walk func(i int)
	walk = func(i int) {
		if i == len(bounds) {
			fx := f(x)
			if fx < bestFx {
				bestFx = fx
				bestX = append([]float64(nil), x...)
			}
			return
		}
		for v := 0; v < widths[i]; v++ {
			x[i] = float64(v)
			walk(i + 1)
		}
	}
	walk(0)

	if bestX == nil {
		return nil, 0, false
	}
	return bestX, bestFx, true
}

func corner(bounds []Bound, hi bool) []float64 {
	x := make([]float64, len(bounds))
	for i, b := range bounds {
		if hi {
			x[i] = b.Hi
		} else {
			x[i] = b.Lo
		}
	}
	return x
}

func midpoint(bounds []Bound) []float64 {
	x := make([]float64, len(bounds))
	for i, b := range bounds {
		x[i] = (b.Lo + b.Hi) / 2
	}
	return x
}

func randomPoint(bounds []Bound, rng *rand.Rand) []float64 {
	x := make([]float64, len(bounds))
	for i, b := range bounds {
		x[i] = b.Lo + rng.Float64()*(b.Hi-b.Lo)
	}
	return x
}

// coordinateDescent repeatedly sweeps every coordinate, probing a
// shrinking step size on either side of the current value and keeping any
// move that improves f, until a sweep makes no improvement or iterations
// is exhausted.
func coordinateDescent(f func([]float64) float64, bounds []Bound, x []float64, iterations int) []float64 {
	cur := make([]float64, len(x))
	copy(cur, x)
	fCur := f(cur)

	for iter := 0; iter < iterations; iter++ {
		improved := false

		for i, b := range bounds {
			step := (b.Hi - b.Lo) / float64(iter+2)

			for _, delta := range [2]float64{step, -step} {
				candidate := cur[i] + delta
				if candidate < b.Lo || candidate > b.Hi {
					continue
				}

				trial := make([]float64, len(cur))
				copy(trial, cur)
				trial[i] = candidate

				fTrial := f(trial)
				if fTrial < fCur {
					cur = trial
					fCur = fTrial
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}

	return cur
}
