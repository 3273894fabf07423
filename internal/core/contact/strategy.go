package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

type Strategy string

const (
	StrategyNaive    Strategy = "naive"
	StrategyParallel Strategy = "parallel"
	StrategyGrid     Strategy = "grid"
)

func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StrategyNaive, nil
	case StrategyNaive, StrategyParallel, StrategyGrid:
		return st, nil
	}
	return "", fmt.Errorf("unknown contact strategy %q (want naive, parallel or grid)", s)
}

// Detect runs the strategy. workers is only used by StrategyParallel.
func (s Strategy) Detect(ctx context.Context, sites []model.ResidueSite, p model.Params, workers int) ([]model.RawPair, error) {
	switch s {
	case StrategyParallel:
		return DetectParallel(ctx, sites, p, workers)
	case StrategyGrid:
		return DetectIndexed(sites, p), nil
	case StrategyNaive, "":
		return Detect(sites, p), nil
	}
	return nil, fmt.Errorf("unknown contact strategy %q", string(s))
}
