package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ParamValue is a step parameter used for instruction placeholders.
// It holds either a string or a number.
type ParamValue struct {
	text     string
	number   float64
	isNumber bool
}

// StringParam creates a textual parameter
func StringParam(s string) ParamValue {
	return ParamValue{text: s}
}

// NumberParam creates a numeric parameter
func NumberParam(n float64) ParamValue {
	return ParamValue{number: n, isNumber: true}
}

// IsNumber reports whether the parameter holds a number
func (p ParamValue) IsNumber() bool {
	return p.isNumber
}

// Number returns the numeric value, or 0 for textual parameters
func (p ParamValue) Number() float64 {
	return p.number
}

// String renders the value for substitution. Numbers use the shortest
// representation, so 375 renders as "375" and 0.5 as "0.5".
func (p ParamValue) String() string {
	if p.isNumber {
		return strconv.FormatFloat(p.number, 'f', -1, 64)
	}
	return p.text
}

// MarshalJSON keeps numbers as JSON numbers
func (p ParamValue) MarshalJSON() ([]byte, error) {
	if p.isNumber {
		return json.Marshal(p.number)
	}
	return json.Marshal(p.text)
}

// UnmarshalJSON accepts a JSON string or number
func (p *ParamValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParamValueOf(raw)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParamValueOf converts a decoded JSON or YAML scalar into a ParamValue
func ParamValueOf(raw interface{}) (ParamValue, error) {
	switch v := raw.(type) {
	case string:
		return StringParam(v), nil
	case float64:
		return NumberParam(v), nil
	case float32:
		return NumberParam(float64(v)), nil
	case int:
		return NumberParam(float64(v)), nil
	case int64:
		return NumberParam(float64(v)), nil
	case uint64:
		return NumberParam(float64(v)), nil
	case bool:
		return StringParam(strconv.FormatBool(v)), nil
	default:
		return ParamValue{}, fmt.Errorf("%w: unsupported parameter value %v (%T)", ErrInvalidTemplate, raw, raw)
	}
}

// StepParameters maps placeholder keys to their values
type StepParameters map[string]ParamValue

// Clone copies the parameter map
func (p StepParameters) Clone() StepParameters {
	if p == nil {
		return StepParameters{}
	}
	out := make(StepParameters, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
