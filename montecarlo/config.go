package montecarlo

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/opd-ai/nativesurface/limits"
)

// validate is a package-level singleton; building a validator is expensive.
var validate = newValidator()

// newValidator registers the maxiterations tag, which bounds a field by
// limits.MaxIterations so the limit lives in one place.
func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("maxiterations", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= limits.MaxIterations
	})
	if err != nil {
		panic(fmt.Sprintf("montecarlo: register maxiterations validation: %v", err))
	}
	return v
}

// Config describes a single estimation run.
type Config struct {
	// Iterations is the number of sample points to draw.
	Iterations int `validate:"gt=0,maxiterations"`

	// Seed makes the run reproducible when non-nil. A nil Seed draws a
	// fresh seed from crypto/rand.
	Seed *uint64
}

// Validate checks the struct tags on c.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: config validation failed: %v", ErrInvalidIterations, err)
	}
	return nil
}

// Source returns the random source selected by c.
func (c Config) Source() Source {
	if c.Seed != nil {
		return NewSource(*c.Seed)
	}
	return NewRandomSource()
}
