package ql

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/wkalt/prioq/demo"
	"github.com/wkalt/prioq/util"
	"github.com/wkalt/prioq/util/log"
)

// ErrInvalidArgument is returned when an expression's arguments are out of
// range.
var ErrInvalidArgument = errors.New("invalid argument")

const maxRandomCount = 1 << 20

// Evaluate builds the queue an expression describes and drains it. seed is
// used by random sources that do not name their own.
func Evaluate(ctx context.Context, expr *Expression, seed int64) (demo.Section, error) {
	src := expr.Source
	name := src.Name()
	ctx = log.AddTags(ctx, "source", name)
	log.Debugw(ctx, "evaluating expression", "unique", expr.Unique, "descending", expr.Descending)
	switch {
	case src.Ints != nil:
		pq := build(src.Ints.Values, expr.Unique, expr.Descending)
		return demo.NewSection(name, pq, formatInt), nil
	case src.Strings != nil:
		pq := build(src.Strings.Values, expr.Unique, expr.Descending)
		return demo.NewSection(name, pq, demo.FormatString), nil
	case src.Chars != nil:
		pq := build([]rune(src.Chars.Text), expr.Unique, expr.Descending)
		return demo.NewSection(name, pq, demo.FormatRune), nil
	case src.Random != nil:
		values, err := randomValues(src.Random, seed)
		if err != nil {
			return demo.Section{}, err
		}
		pq := build(values, expr.Unique, expr.Descending)
		return demo.NewSection(name, pq, formatInt), nil
	default:
		return demo.Section{}, fmt.Errorf("%w: empty source", ErrInvalidArgument)
	}
}

// Run parses and evaluates an expression.
func Run(ctx context.Context, s string, seed int64) (demo.Section, error) {
	expr, err := Parse(s)
	if err != nil {
		return demo.Section{}, err
	}
	return Evaluate(ctx, expr, seed)
}

func build[T cmp.Ordered](values []T, unique bool, descending bool) *util.PriorityQueue[T] {
	less := util.Natural[T]
	if descending {
		less = util.Reverse(less)
	}
	if unique {
		return util.NewPriorityQueueFrom(util.NewSet(values...).Items(), less)
	}
	pq := util.NewPriorityQueue(less)
	pq.PushAll(values...)
	return pq
}

func randomValues(r *Random, seed int64) ([]int64, error) {
	if r.Count < 0 || r.Count > maxRandomCount {
		return nil, fmt.Errorf("%w: count must be between 0 and %d, got %d", ErrInvalidArgument, maxRandomCount, r.Count)
	}
	if r.Bound <= 0 {
		return nil, fmt.Errorf("%w: bound must be positive, got %d", ErrInvalidArgument, r.Bound)
	}
	if r.Seed != nil {
		seed = *r.Seed
	}
	rng := rand.New(rand.NewSource(seed)) // nolint:gosec
	values := make([]int64, r.Count)
	for i := range values {
		values[i] = rng.Int63n(int64(r.Bound))
	}
	return values, nil
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
