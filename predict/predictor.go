// Package predict computes death predictions: a predicted death date and a
// cause, derived from a birthday, a lifespan and a random source.
package predict

import (
	"errors"
	"math"
	"math/rand"

	"github.com/ossian/death/date"
)

const (
	// MaxYearsOld is the oldest age a prediction will reach.
	MaxYearsOld = 95

	// Lifespans convert to days using a flat 365-day year, with no
	// leap-day accumulation.
	daysPerYear = 365

	// maxPerturbDays bounds the random perturbation applied to
	// non-deterministic predictions.
	maxPerturbDays = 180
)

// ErrNoReasons is returned when a reason is requested from an empty list.
var ErrNoReasons = errors.New("no death reasons to choose from")

// Predictor computes predictions from a single random source. The source is
// supplied by the caller so predictions can be made reproducible.
type Predictor struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Predictor {
	return &Predictor{rng: rng}
}

// NewSeeded returns a Predictor whose draws are reproducible for the given
// seed.
func NewSeeded(seed int64) *Predictor {
	return New(rand.New(rand.NewSource(seed)))
}

// DeathDate returns the predicted death date for someone born on birthday
// who lives for the given number of years. In deterministic mode the result
// is exactly birthday plus years*365 days. Otherwise the date is perturbed
// by up to maxPerturbDays days either way. The result is always a valid
// date: AddDays saturates at the calendar bounds rather than overflowing.
func (p *Predictor) DeathDate(birthday date.Date, years int, deterministic bool) date.Date {
	days := years * daysPerYear
	if !deterministic {
		days += p.rng.Intn(2*maxPerturbDays+1) - maxPerturbDays
	}
	return birthday.AddDays(days)
}

// Reason picks one entry from the list uniformly at random. It returns
// ErrNoReasons if the list is empty; callers are expected to substitute a
// default list before asking.
func (p *Predictor) Reason(reasons []string) (string, error) {
	if len(reasons) == 0 {
		return "", ErrNoReasons
	}
	return reasons[p.rng.Intn(len(reasons))], nil
}

// Lifespan derives a total lifespan in years for a person of the given age.
// The remaining years are drawn from [1, MaxYearsOld-age] on an exponential
// curve that favours smaller values, so the unlucky outnumber the
// long-lived.
func (p *Predictor) Lifespan(age int) int {
	if age < 0 {
		age = 0
	}

	left := MaxYearsOld - age
	if left < 1 {
		return age + 1
	}

	// Stretch the curve horizontally so integer truncation keeps its shape.
	const k = 100

	// base^0 = 1, base^(left*k) = left
	base := math.Pow(float64(left), 1/float64(left*k))
	x := float64(p.rng.Intn(left * k))

	years := int(math.Pow(base, x))
	if years < 1 {
		years = 1
	}

	return age + years
}
