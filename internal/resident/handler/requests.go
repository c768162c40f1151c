package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"residents/internal/resident/models"
)

// CreateResidentRequest holds the create body with fields left undecoded, so
// their JSON types can be inspected during Parse.
type CreateResidentRequest struct {
	Name json.RawMessage `json:"name"`
	Age  json.RawMessage `json:"age"`
}

// Parse validates the request in field order, first failure wins, and returns
// the normalized input: trimmed name, age truncated toward zero.
func (r *CreateResidentRequest) Parse() (models.NewResident, error) {
	name, ok := parseName(r.Name)
	if !ok {
		return models.NewResident{}, &models.ValidationError{Reason: models.ReasonNameRequired}
	}
	age, ok := parseAge(r.Age)
	if !ok {
		return models.NewResident{}, &models.ValidationError{Reason: models.ReasonAgeInvalid}
	}
	return models.NewResident{Name: name, Age: age}, nil
}

// parseName accepts only a JSON string that is non-empty once trimmed.
func parseName(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// parseAge converts raw to a finite, non-negative number and truncates it.
func parseAge(raw json.RawMessage) (int, bool) {
	n, ok := toNumber(raw)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, false
	}
	n = math.Trunc(n)
	if n > maxExactInt {
		return 0, false
	}
	return int(n), true
}

// maxExactInt is the largest integer a float64 represents exactly.
const maxExactInt = 1<<53 - 1

// toNumber applies loose numeric coercion: numbers as-is, numeric strings
// parsed after trimming (blank is 0), booleans as 1/0 and null as 0. Absent
// fields, arrays and objects do not convert.
func toNumber(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}
	switch raw[0] {
	case 'n':
		return 0, true
	case 't':
		return 1, true
	case 'f':
		return 0, true
	case '[', '{':
		return 0, false
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, true
		}
		return parseDecimal(s)
	default:
		return parseDecimal(string(raw))
	}
}

// parseDecimal parses a decimal float or an unsigned 0x/0o/0b integer. The
// other spellings strconv accepts (inf, nan, hex floats, underscores) are
// rejected.
func parseDecimal(s string) (float64, bool) {
	lower := strings.ToLower(s)
	if len(lower) > 2 && lower[0] == '0' {
		switch lower[1] {
		case 'x':
			return parseRadix(lower[2:], 16)
		case 'o':
			return parseRadix(lower[2:], 8)
		case 'b':
			return parseRadix(lower[2:], 2)
		}
	}
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") ||
		strings.Contains(lower, "0x") || strings.Contains(s, "_") {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseRadix accumulates digits in base into a float64, so overlong input
// loses precision instead of failing.
func parseRadix(digits string, base int) (float64, bool) {
	var n float64
	for _, c := range digits {
		d, err := strconv.ParseUint(string(c), base, 8)
		if err != nil {
			return 0, false
		}
		n = n*float64(base) + float64(d)
	}
	return n, true
}

// parseResidentID converts the {id} path value. Anything that is not a finite
// positive whole number cannot match a stored resident.
func parseResidentID(raw string) (int64, bool) {
	n, ok := parseDecimal(strings.TrimSpace(raw))
	if !ok || n < 1 || n != math.Trunc(n) || n > maxExactInt {
		return 0, false
	}
	return int64(n), true
}
