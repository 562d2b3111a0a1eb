package problem

import (
	"fmt"
	"math"
)

// Problem is a closed-form benchmark fitness function over a real-valued
// gene vector. Fitness is maximized and stays strictly positive so that
// fitness-proportional selection remains valid.
type Problem interface {
	Name() string
	Dimension() int
	Bounds() (lo, hi float64)
	Evaluate(genes []float64) float64
}

// FromName builds a benchmark problem by its registered name.
func FromName(name string, dimension int) (Problem, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("dimension must be > 0, got %d", dimension)
	}
	switch name {
	case "sphere":
		return Sphere{N: dimension}, nil
	case "rastrigin":
		return Rastrigin{N: dimension}, nil
	case "onemax":
		return OneMax{N: dimension}, nil
	default:
		return nil, fmt.Errorf("unsupported problem: %s", name)
	}
}

// Names returns the registered problem names in a stable order.
func Names() []string {
	return []string{"sphere", "rastrigin", "onemax"}
}

// Sphere is the canonical unimodal benchmark: fitness 1/(1+Σx²), optimum
// 1 at the origin.
type Sphere struct {
	N int
}

func (Sphere) Name() string {
	return "sphere"
}

func (s Sphere) Dimension() int {
	return s.N
}

func (Sphere) Bounds() (float64, float64) {
	return -5.12, 5.12
}

func (Sphere) Evaluate(genes []float64) float64 {
	sum := 0.0
	for _, x := range genes {
		sum += x * x
	}
	return 1 / (1 + sum)
}

// Rastrigin is the heavily multimodal benchmark, inverted into (0, 1]
// with the optimum 1 at the origin.
type Rastrigin struct {
	N int
}

func (Rastrigin) Name() string {
	return "rastrigin"
}

func (r Rastrigin) Dimension() int {
	return r.N
}

func (Rastrigin) Bounds() (float64, float64) {
	return -5.12, 5.12
}

func (Rastrigin) Evaluate(genes []float64) float64 {
	sum := 10 * float64(len(genes))
	for _, x := range genes {
		sum += x*x - 10*math.Cos(2*math.Pi*x)
	}
	if sum < 0 {
		// Floating-point cancellation near the optimum can dip below zero.
		sum = 0
	}
	return 1 / (1 + sum)
}

// OneMax counts genes above 0.5, normalized by dimension. The epsilon
// keeps fitness positive even for the all-zero vector.
type OneMax struct {
	N int
}

const oneMaxEpsilon = 1e-9

func (OneMax) Name() string {
	return "onemax"
}

func (o OneMax) Dimension() int {
	return o.N
}

func (OneMax) Bounds() (float64, float64) {
	return 0, 1
}

func (OneMax) Evaluate(genes []float64) float64 {
	set := 0
	for _, x := range genes {
		if x > 0.5 {
			set++
		}
	}
	return float64(set)/float64(len(genes)) + oneMaxEpsilon
}
