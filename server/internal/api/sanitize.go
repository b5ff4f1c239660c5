package api

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Orsy-git/securiPass/server/internal/config"
)

// sanitizeLength turns the raw "length" value of a generate request into the
// length handed to the generator.
//
//	missing / null / bool / object / unparsable  → DefaultLength
//	below MinLength                              → DefaultLength
//	above MaxLength                              → MaxLength
//
// JSON numbers are truncated toward zero; strings must hold a base-10 integer.
func sanitizeLength(raw any, g config.GeneratorConfig) int {
	n, ok := toInt64(raw)
	if !ok || n < int64(g.MinLength) {
		return g.DefaultLength
	}
	if n > int64(g.MaxLength) {
		return g.MaxLength
	}
	return int(n)
}

// toInt64 converts a value decoded with json.Decoder.UseNumber to an integer.
// Out-of-range integers saturate.
func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(v.String(), 10, 64); err == nil || errors.Is(err, strconv.ErrRange) {
			return n, true
		}
		f, err := v.Float64()
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return truncate(f), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return n, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func truncate(f float64) int64 {
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
