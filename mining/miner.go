package mining

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
)

// Miner is the capability shared by every mining strategy.
type Miner interface {
	// FindPositive returns hard same-neighborhood pairs, hardest first.
	FindPositive(ctx context.Context, limit Limit) ([]dataset.Pair, error)
	// FindNegative returns hard far-apart pairs.
	FindNegative(ctx context.Context, limit Limit) ([]dataset.Pair, error)
}

// Strategy tags a mining strategy.
type Strategy int

const (
	// StrategyCycle mines with CycleMiner.
	StrategyCycle Strategy = iota
	// StrategySpectral mines with SpectralMiner.
	StrategySpectral
	// StrategySVM is the Exemplar-SVM strategy; not implemented.
	StrategySVM
)

func (s Strategy) String() string {
	switch s {
	case StrategyCycle:
		return "cycle"
	case StrategySpectral:
		return "spectral"
	case StrategySVM:
		return "svm"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "cycle", "spectral" and "svm" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cycle":
		return StrategyCycle, nil
	case "spectral":
		return StrategySpectral, nil
	case "svm":
		return StrategySVM, nil
	default:
		return 0, fmt.Errorf("mining: unknown strategy %q: %w", name, dataset.ErrInvalidArgument)
	}
}

// NewMiner builds the miner for s over ds and g.
// StrategySVM returns ErrNotImplemented.
func NewMiner(s Strategy, ds *dataset.Dataset, g *core.Graph, opts ...Option) (Miner, error) {
	switch s {
	case StrategyCycle:
		m, err := NewCycleMiner(ds, g, opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	case StrategySpectral:
		m, err := NewSpectralMiner(ds, g, opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	case StrategySVM:
		return nil, fmt.Errorf("mining: strategy %s: %w", s, dataset.ErrNotImplemented)
	default:
		return nil, fmt.Errorf("mining: strategy %s: %w", s, dataset.ErrInvalidArgument)
	}
}

// checkInputs validates the dataset/graph pair shared by all miners.
func checkInputs(ds *dataset.Dataset, g *core.Graph) error {
	if ds == nil || g == nil {
		return fmt.Errorf("mining: nil dataset or graph: %w", dataset.ErrInvalidArgument)
	}
	for _, v := range g.Vertices() {
		if err := ds.CheckIndex(v); err != nil {
			return fmt.Errorf("mining: graph vertex %d has no dataset row: %w", v, err)
		}
	}
	return nil
}
