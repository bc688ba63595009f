package networth

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the serialized form of data,
// e.g. `$.assets[?(@.category=="cash")].value`.
//
// Numbers are returned as float64, objects as map[string]any and sequences as []any.
func Query(data FinancialData, expr string) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize data: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("cannot decode data: %w", err)
	}
	res, err := jsonpath.Get(expr, v)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return res, nil
}
