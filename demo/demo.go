package demo

import (
	"context"
	"math/rand"
	"strconv"

	"github.com/wkalt/prioq/util"
	"github.com/wkalt/prioq/util/log"
)

/*
Package demo populates a handful of priority queues and drains them in
priority order. It shows the queue under natural and reversed orderings, with
both one-at-a-time insertion and bulk construction, and deduplication through
a set before the queue is built.
*/

////////////////////////////////////////////////////////////////////////////////

const (
	// DefaultSeed seeds the random section.
	DefaultSeed int64 = 47

	// DefaultFact is split into characters for the string and character
	// sections.
	DefaultFact = "EDUCATION SHOULD ESCHEW OBFUCATION"

	randomCount = 10
)

// DefaultInts is the fixed list used by the integer sections.
var DefaultInts = []int{25, 22, 20, 18, 14, 9, 3, 1, 1, 2, 3, 4, 9, 15, 18, 21, 23, 25} // nolint:gochecknoglobals

// Section is the drained contents of one queue.
type Section struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Sections builds each demonstration queue in turn and returns them drained.
func Sections(ctx context.Context, seed int64, fact string, ints []int) []Section {
	return []Section{
		randomSection(ctx, seed),
		fixedSection(ctx, ints),
		reversedSection(ctx, ints),
		stringsSection(ctx, fact),
		uniqueCharsSection(ctx, fact),
	}
}

// RandomInts returns count values where the i'th is drawn from [0, i+bound).
func RandomInts(seed int64, count, bound int) []int {
	r := rand.New(rand.NewSource(seed)) // nolint:gosec
	result := make([]int, count)
	for i := range result {
		result[i] = r.Intn(i + bound)
	}
	return result
}

// NewSection drains pq into a section, formatting each value with format.
func NewSection[T any](name string, pq *util.PriorityQueue[T], format func(T) string) Section {
	drained := util.Drain(pq)
	values := make([]string, len(drained))
	for i, v := range drained {
		values[i] = format(v)
	}
	return Section{Name: name, Values: values}
}

// FormatRune renders a rune as the character it encodes.
func FormatRune(r rune) string {
	return string(r)
}

// FormatString returns s unchanged.
func FormatString(s string) string {
	return s
}

func randomSection(ctx context.Context, seed int64) Section {
	pq := util.NewPriorityQueue(util.Natural[int])
	for _, v := range RandomInts(seed, randomCount, randomCount) {
		pq.Push(v)
	}
	log.Debugw(log.AddTags(ctx, "section", "random"), "built queue", "seed", seed, "size", pq.Len())
	return NewSection("random", pq, strconv.Itoa)
}

func fixedSection(ctx context.Context, ints []int) Section {
	pq := util.NewPriorityQueueFrom(ints, util.Natural[int])
	log.Debugw(log.AddTags(ctx, "section", "fixed"), "built queue", "size", pq.Len())
	return NewSection("fixed", pq, strconv.Itoa)
}

func reversedSection(ctx context.Context, ints []int) Section {
	pq := util.NewPriorityQueue(util.Reverse(util.Natural[int]))
	pq.PushAll(ints...)
	log.Debugw(log.AddTags(ctx, "section", "reversed"), "built queue", "size", pq.Len())
	return NewSection("reversed", pq, strconv.Itoa)
}

func stringsSection(ctx context.Context, fact string) Section {
	pq := util.NewPriorityQueue(util.Reverse(util.Natural[string]))
	for _, r := range fact {
		pq.Push(string(r))
	}
	log.Debugw(log.AddTags(ctx, "section", "strings"), "built queue", "size", pq.Len())
	return NewSection("strings", pq, FormatString)
}

func uniqueCharsSection(ctx context.Context, fact string) Section {
	set := util.NewSet([]rune(fact)...)
	pq := util.NewPriorityQueueFrom(set.Items(), util.Natural[rune])
	log.Debugw(
		log.AddTags(ctx, "section", "chars"),
		"built queue",
		"input", len([]rune(fact)),
		"distinct", set.Len(),
	)
	return NewSection("chars", pq, FormatRune)
}
