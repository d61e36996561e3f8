package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"view3d/transform"
)

// Op is one parsed transform request from the command line.
type Op struct {
	Kind  transform.Kind
	Value float64
}

func (op Op) String() string {
	return fmt.Sprintf("%s=%g", op.Kind, op.Value)
}

// parseOp parses a single "kind=value" flag, e.g. "rotate-z=90" or
// "move-x=-2.5".
func parseOp(s string) (Op, error) {
	name, valueStr, found := strings.Cut(s, "=")
	if !found {
		return Op{}, fmt.Errorf("op %q: want kind=value, e.g. rotate-z=90", s)
	}
	kind, err := transform.ParseKind(name)
	if err != nil {
		return Op{}, fmt.Errorf("op %q: %w", s, err)
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return Op{}, fmt.Errorf("op %q: bad value %q", s, valueStr)
	}
	return Op{Kind: kind, Value: value}, nil
}

// parseOps parses all --op flags in order.
func parseOps(specs []string) ([]Op, error) {
	ops := make([]Op, 0, len(specs))
	for _, s := range specs {
		op, err := parseOp(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// applyOps runs the ops against the vertex set in order, selecting the
// matching strategy for each before dispatching, exactly as a UI event
// handler would.
func applyOps(logger *log.Logger, points []transform.Point, ops []Op) error {
	var tr transform.Transformer
	for _, op := range ops {
		strategy, err := transform.StrategyFor(op.Kind)
		if err != nil {
			return err
		}
		if op.Kind == transform.Scale && op.Value == 0 {
			logger.Warn("scale factor 0 collapses the model to the origin")
		}
		tr.Select(strategy)
		if err := tr.Apply(points, op.Kind, op.Value); err != nil {
			return fmt.Errorf("apply %s: %w", op, err)
		}
		logger.Debug("applied transform", "op", op.String(), "vertices", len(points))
	}
	return nil
}
