package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// buildResult converts a tagged, schema-checked result into its typed variant.
func buildResult(tagged map[string]any) (AlignmentResult, error) {
	tag, err := findTag(tagged)
	if err != nil {
		return nil, err
	}

	body, ok := tagged[tag].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected table, got %T", tag, tagged[tag])
	}

	stats, err := parseStatistics(body[keyStatistics])
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", tag, keyStatistics, err)
	}

	switch tag {
	case TagWithTarget:
		alignment, err := parseAlignment(body[keyAlignment])
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", tag, keyAlignment, err)
		}
		return WithTarget{Alignment: alignment, Statistics: stats}, nil
	case TagWithoutTarget:
		return WithoutTarget{Statistics: stats}, nil
	default:
		return nil, ErrNoResult
	}
}

func parseStatistics(value any) (Statistics, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return Statistics{}, fmt.Errorf("expected table, got %T", value)
	}

	raw, ok := m[keyCost]
	if !ok {
		return Statistics{}, fmt.Errorf("missing required field %q", keyCost)
	}
	cost, err := toUint64(raw)
	if err != nil {
		return Statistics{}, fmt.Errorf("%s: %w", keyCost, err)
	}

	var extra map[string]any
	for key, val := range m {
		if key == keyCost {
			continue
		}
		if extra == nil {
			extra = make(map[string]any, len(m)-1)
		}
		extra[key] = val
	}

	return Statistics{Cost: cost, Extra: extra}, nil
}

func parseAlignment(value any) (Alignment, error) {
	entries, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", value)
	}

	alignment := make(Alignment, 0, len(entries))
	for i, entry := range entries {
		op, err := parseEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		alignment = append(alignment, op)
	}
	return alignment, nil
}

// parseEntry accepts [count, op] pairs and bare operations.
func parseEntry(value any) (Operation, error) {
	pair, ok := value.([]any)
	if !ok {
		return parseOperation(value)
	}
	if len(pair) != 2 {
		return Operation{}, fmt.Errorf("expected [count, operation], got %d items", len(pair))
	}

	count, err := toUint64(pair[0])
	if err != nil {
		return Operation{}, fmt.Errorf("count: %w", err)
	}
	op, err := parseOperation(pair[1])
	if err != nil {
		return Operation{}, err
	}
	op.Count = count
	return op, nil
}

// parseOperation accepts "Kind" and {Kind = payload}.
func parseOperation(value any) (Operation, error) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return Operation{}, fmt.Errorf("empty operation name")
		}
		return Operation{Kind: v, Count: 1}, nil
	case map[string]any:
		if len(v) != 1 {
			return Operation{}, fmt.Errorf("operation table must have exactly one key, got %d", len(v))
		}
		for kind, data := range v {
			return Operation{Kind: kind, Count: 1, Data: data}, nil
		}
	}
	return Operation{}, fmt.Errorf("expected operation name or table, got %T", value)
}

// toUint64 accepts non-negative integers only. Floats are rejected even when
// integral, since costs are compared exactly.
func toUint64(value any) (uint64, error) {
	switch v := value.(type) {
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("expected non-negative integer, got %d", v)
		}
		return uint64(v), nil
	case uint64:
		return v, nil
	default:
		return 0, fmt.Errorf("expected non-negative integer, got %T", value)
	}
}

// jsonSafe returns a copy of value that encoding/json can marshal.
// Non-finite floats, which TOML allows in free-form statistics, become strings.
func jsonSafe(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = jsonSafe(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = jsonSafe(val)
		}
		return out
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		return v
	default:
		return value
	}
}

// marshalForValidation encodes a tagged result for the schema validator.
func marshalForValidation(tagged map[string]any) ([]byte, error) {
	data, err := json.Marshal(jsonSafe(tagged))
	if err != nil {
		return nil, fmt.Errorf("encode result for validation: %w", err)
	}
	return data, nil
}
