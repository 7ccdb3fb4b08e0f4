package treegp

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Options configure a run. The zero value asks for defaults: a time-based
// seed and one evaluation worker per available CPU.
type Options struct {
	// Seed fixes the random source. A run with a fixed seed and a single
	// worker is fully deterministic. Zero means seed from the clock.
	Seed int64 `yaml:"seed"`

	// Workers is the number of goroutines evaluating fitness in parallel.
	// Zero means one per available CPU.
	Workers int `yaml:"workers"`

	// Logger receives per-generation progress. Nil means no logging.
	Logger *zap.Logger `yaml:"-"`
}

// LoadOptions reads YAML run options from r.
func LoadOptions(r io.Reader) (*Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read options")
	}
	var o Options
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, errors.Wrap(err, "parse options")
	}
	if o.Workers < 0 {
		return nil, errors.Errorf("workers must be non-negative, got %d", o.Workers)
	}
	return &o, nil
}
