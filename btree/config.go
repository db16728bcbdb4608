package btree

import "fmt"

const (
	// DefaultDegree is the minimum degree used when a Config leaves Degree unset.
	DefaultDegree = 2
	// MinDegree is the smallest minimum degree a B-tree may have.
	MinDegree = 2
)

// Config configures a B-tree.
type Config struct {
	// Degree is the minimum degree t. Every non-root node holds between t-1
	// and 2t-1 keys. A zero value selects DefaultDegree.
	Degree int
}

// DegreeConfig is a shortcut for Config{Degree: t}.
func DegreeConfig(t int) Config {
	return Config{Degree: t}
}

func (cfg Config) normalized() Config {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Degree < MinDegree {
		return fmt.Errorf("%w: minimum degree must be >= %d, is %d", ErrInvalidConfig, MinDegree, cfg.Degree)
	}
	return nil
}

// MaxKeys returns the key capacity of any node, 2t-1.
func (cfg Config) MaxKeys() int {
	return 2*cfg.normalized().Degree - 1
}

// MinKeys returns the lower key bound of a non-root node, t-1.
func (cfg Config) MinKeys() int {
	return cfg.normalized().Degree - 1
}

// MaxChildren returns the child capacity of an internal node, 2t.
func (cfg Config) MaxChildren() int {
	return 2 * cfg.normalized().Degree
}
