package report

import (
	"fmt"
	"os"

	"github.com/AndreyAkinshin/statcmp/internal/errors"
	"github.com/AndreyAkinshin/statcmp/internal/schema"
)

// Load reads a report file and decodes it.
// The returned error is a *errors.StatcmpError of kind KindIO or KindParse.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(path, err)
	}

	rep, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.Parse(path, err)
	}
	rep.Path = path
	return rep, nil
}

// Decode parses report text in the given format.
func Decode(data []byte, format Format) (*Report, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}

	res, err := resolveLayout(doc)
	if err != nil {
		return nil, err
	}

	encoded, err := marshalForValidation(res.result)
	if err != nil {
		return nil, err
	}
	if err := schema.ValidateResult(encoded); err != nil {
		return nil, fmt.Errorf("%s layout: %w", res.layout, err)
	}

	result, err := buildResult(res.result)
	if err != nil {
		return nil, fmt.Errorf("%s layout: %w", res.layout, err)
	}

	params := make(map[string]any, len(doc))
	for key, val := range doc {
		params[key] = val
	}
	for _, key := range res.consumed {
		delete(params, key)
	}

	return &Report{
		Layout:     res.layout,
		Result:     result,
		Parameters: params,
	}, nil
}
