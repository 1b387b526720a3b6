package service

import (
	"fmt"
	"strconv"

	leadmodel "github.com/wso2/sales-lead-scoring-service/internal/leads/model"
)

// vectorizeRecords converts projected records to feature vectors in model
// column order. The trained artifact consumes numeric inputs, so values must
// be numbers, booleans or numeric strings; anything else is a model input
// type mismatch and fails the whole batch.
func vectorizeRecords(records []leadmodel.Record, features []string) ([][]float64, error) {
	vectors := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(features))
		for j, feature := range features {
			value, err := toFloat(record[feature])
			if err != nil {
				return nil, fmt.Errorf("record %d, column %q: %w", i, feature, err)
			}
			row[j] = value
		}
		vectors[i] = row
	}
	return vectors, nil
}

func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", v)
		}
		return parsed, nil
	case nil:
		return 0, fmt.Errorf("value is null")
	default:
		return 0, fmt.Errorf("unsupported value type %T", value)
	}
}
