package btree

import "fmt"

const (
	// MinDegreeFloor is the smallest admissible minimum degree of a B-tree.
	MinDegreeFloor = 2
	// DefaultMinDegree is used when no minimum degree is configured. It favors
	// few, wide nodes for cache-friendly in-memory use.
	DefaultMinDegree = 1023
)

// Config configures an order-statistic B-tree.
type Config struct {
	// MinDegree is the minimum degree t of the tree: every node except the
	// root holds between t-1 and 2t-1 entries. Zero selects DefaultMinDegree.
	MinDegree int
}

func (cfg Config) normalized() Config {
	if cfg.MinDegree == 0 {
		cfg.MinDegree = DefaultMinDegree
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.MinDegree < MinDegreeFloor {
		return fmt.Errorf("%w: minimum degree %d below %d", ErrInvalidConfig,
			cfg.MinDegree, MinDegreeFloor)
	}
	return nil
}
