package editor

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/bricklayer25/jsoncrack.com/pkg/document"
)

// ParseBranch records which interpretation produced a value, so tests and
// telemetry can observe the fallback chain even though the public
// contract is total.
type ParseBranch int

const (
	ParseStrict ParseBranch = iota
	ParseNumber
	ParseBool
	ParseNull
	ParseRawString
)

func (b ParseBranch) String() string {
	switch b {
	case ParseStrict:
		return "strict"
	case ParseNumber:
		return "number"
	case ParseBool:
		return "bool"
	case ParseNull:
		return "null"
	default:
		return "raw-string"
	}
}

// ParseOutcome is a parsed value plus the branch that produced it.
type ParseOutcome struct {
	Value  any
	Branch ParseBranch
}

// ParseValue turns arbitrary edit text into a value. It never fails: a
// strict parse of the full text is tried first, then the trimmed text is
// classified as a number, boolean or null literal, and anything left over
// becomes a plain string.
func ParseValue(text string) ParseOutcome {
	if v, err := document.DecodeValue([]byte(text)); err == nil {
		return ParseOutcome{Value: v, Branch: ParseStrict}
	}

	trimmed := strings.TrimSpace(text)

	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return ParseOutcome{Value: json.Number(strconv.FormatInt(i, 10)), Branch: ParseNumber}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return ParseOutcome{Value: json.Number(strconv.FormatFloat(f, 'g', -1, 64)), Branch: ParseNumber}
	}

	switch trimmed {
	case "true":
		return ParseOutcome{Value: true, Branch: ParseBool}
	case "false":
		return ParseOutcome{Value: false, Branch: ParseBool}
	case "null":
		return ParseOutcome{Value: nil, Branch: ParseNull}
	}

	return ParseOutcome{Value: trimmed, Branch: ParseRawString}
}
