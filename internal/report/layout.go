package report

import (
	"errors"
	"fmt"
)

// Layout names the shape in which a report stores its alignment result.
// Engine versions disagree on it, so every known shape is accepted.
type Layout string

const (
	// LayoutTagged is a top-level WithTarget or WithoutTarget table.
	LayoutTagged Layout = "tagged"
	// LayoutNestedTagged is the tagged table under a top-level statistics table.
	LayoutNestedTagged Layout = "nested-tagged"
	// LayoutFlat is a top-level alignment array next to a statistics table.
	LayoutFlat Layout = "flat"
	// LayoutNested is statistics.alignment next to statistics.statistics.
	LayoutNested Layout = "nested"
	// LayoutFlatPartial is a statistics table with a cost and no alignment.
	LayoutFlatPartial Layout = "flat-partial"
)

const (
	keyAlignment  = "alignment"
	keyStatistics = "statistics"
	keyCost       = "cost"
)

// ErrNoResult is returned when a document holds no recognizable alignment result.
var ErrNoResult = errors.New("no alignment result found")

// resolution is a located alignment result in externally tagged form,
// {"WithTarget": {...}} or {"WithoutTarget": {...}}.
type resolution struct {
	result   map[string]any
	layout   Layout
	consumed []string
}

// resolveLayout locates the alignment result inside doc.
// Layouts are tried in a fixed order and the first match wins.
func resolveLayout(doc map[string]any) (*resolution, error) {
	tag, err := findTag(doc)
	if err != nil {
		return nil, err
	}
	if tag != "" {
		return &resolution{
			result:   map[string]any{tag: doc[tag]},
			layout:   LayoutTagged,
			consumed: []string{tag},
		}, nil
	}

	stats, statsIsTable := doc[keyStatistics].(map[string]any)
	if statsIsTable {
		tag, err := findTag(stats)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyStatistics, err)
		}
		if tag != "" {
			return &resolution{
				result:   map[string]any{tag: stats[tag]},
				layout:   LayoutNestedTagged,
				consumed: []string{keyStatistics},
			}, nil
		}
	}

	if _, ok := doc[keyAlignment]; ok {
		return &resolution{
			result:   map[string]any{TagWithTarget: pick(doc, keyAlignment, keyStatistics)},
			layout:   LayoutFlat,
			consumed: []string{keyAlignment, keyStatistics},
		}, nil
	}

	if !statsIsTable {
		return nil, ErrNoResult
	}

	if _, ok := stats[keyAlignment]; ok {
		return &resolution{
			result:   map[string]any{TagWithTarget: pick(stats, keyAlignment, keyStatistics)},
			layout:   LayoutNested,
			consumed: []string{keyStatistics},
		}, nil
	}

	if _, ok := stats[keyCost]; ok {
		return &resolution{
			result:   map[string]any{TagWithoutTarget: map[string]any{keyStatistics: stats}},
			layout:   LayoutFlatPartial,
			consumed: []string{keyStatistics},
		}, nil
	}

	return nil, ErrNoResult
}

// findTag returns the variant tag present in m, or "" if there is none.
func findTag(m map[string]any) (string, error) {
	_, with := m[TagWithTarget]
	_, without := m[TagWithoutTarget]
	switch {
	case with && without:
		return "", fmt.Errorf("both %s and %s present", TagWithTarget, TagWithoutTarget)
	case with:
		return TagWithTarget, nil
	case without:
		return TagWithoutTarget, nil
	default:
		return "", nil
	}
}

// pick copies the given keys of m that are present.
func pick(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		if v, ok := m[key]; ok {
			out[key] = v
		}
	}
	return out
}
