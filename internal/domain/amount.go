package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexibleAmount is an author-defined range for an ingredient quantity,
// e.g. "sugar to taste". Min <= Recommended <= Max.
type FlexibleAmount struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Recommended float64 `json:"recommended"`
	Step        float64 `json:"step,omitempty"`
}

// Amount is either a fixed scalar or a flexible range.
// The zero value is a fixed amount of 0.
type Amount struct {
	Value float64
	Range *FlexibleAmount
}

// FixedAmount creates a fixed scalar amount
func FixedAmount(v float64) Amount {
	return Amount{Value: v}
}

// FlexAmount creates a flexible amount without a step granularity
func FlexAmount(min, max, recommended float64) Amount {
	return Amount{Range: &FlexibleAmount{Min: min, Max: max, Recommended: recommended}}
}

// IsFixed reports whether the amount is a single scalar
func (a Amount) IsFixed() bool {
	return a.Range == nil
}

// Clone returns a copy that shares no memory with a
func (a Amount) Clone() Amount {
	if a.Range == nil {
		return Amount{Value: a.Value}
	}
	r := *a.Range
	return Amount{Range: &r}
}

// MarshalJSON renders fixed amounts as a bare number and ranges as an object
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Range == nil {
		return json.Marshal(a.Value)
	}
	return json.Marshal(a.Range)
}

// UnmarshalJSON accepts either a number or a {min,max,recommended,step} object
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}

	if data[0] == '{' {
		var r FlexibleAmount
		if err := json.Unmarshal(data, &r); err != nil {
			return fmt.Errorf("invalid flexible amount: %w", err)
		}
		*a = Amount{Range: &r}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid fixed amount: %w", err)
	}
	*a = Amount{Value: v}
	return nil
}
