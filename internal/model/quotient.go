package model

import "encoding/json"

// Quotient is the result of a division whose denominator may be zero.
// Defined is false when the denominator was zero; Value is then meaningless.
type Quotient struct {
	Value   float64
	Defined bool
}

// Divide returns numerator / denominator, undefined for a zero denominator.
func Divide(numerator, denominator float64) Quotient {
	if denominator == 0 {
		return Quotient{}
	}
	return Quotient{Value: numerator / denominator, Defined: true}
}

// Percentage returns part as a percentage of whole.
func Percentage(part, whole int) Quotient {
	q := Divide(float64(part), float64(whole))
	if q.Defined {
		q.Value *= 100
	}
	return q
}

// MarshalJSON encodes a defined quotient as a number and an undefined one as null.
func (q Quotient) MarshalJSON() ([]byte, error) {
	if !q.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(q.Value)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (q *Quotient) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*q = Quotient{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*q = Quotient{Value: v, Defined: true}
	return nil
}
