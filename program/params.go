package program

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/theapemachine/qsim"
)

var ErrInvalidParam = errors.New("invalid parameter")

// piExprRegex matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, 3*pi/4, -pi, -pi/2, -3*pi/4
var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

/*
ParseParam turns a raw u3 angle from a circuit description into a qsim.Param.

Accepted forms:
  - numbers of any Go numeric type: literal radians
  - "default" (any case) or a missing value: use the defaults table
  - numeric strings: "1.5707", "-0.5", "3.14e-2"
  - pi expressions: "pi", "pi/2", "3*pi/4", "-2pi/3"
*/
func ParseParam(raw any) (qsim.Param, error) {
	switch v := raw.(type) {
	case nil:
		return qsim.UseDefault(), nil
	case float64:
		return qsim.Literal(v), nil
	case float32:
		return qsim.Literal(float64(v)), nil
	case int:
		return qsim.Literal(float64(v)), nil
	case int64:
		return qsim.Literal(float64(v)), nil
	case int32:
		return qsim.Literal(float64(v)), nil
	case uint64:
		return qsim.Literal(float64(v)), nil
	case string:
		s := strings.TrimSpace(v)
		if strings.EqualFold(s, "default") {
			return qsim.UseDefault(), nil
		}
		if val, ok := parseParamExpr(s); ok {
			return qsim.Literal(val), nil
		}
		return qsim.Param{}, fmt.Errorf("%w: %q", ErrInvalidParam, v)
	}

	return qsim.Param{}, fmt.Errorf("%w: unexpected %T", ErrInvalidParam, raw)
}

func parseParamExpr(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}

	matches := piExprRegex.FindStringSubmatch(strings.ToLower(s))
	if matches == nil {
		return 0, false
	}

	coeff := 1.0
	if matches[2] != "" {
		var err error
		if coeff, err = strconv.ParseFloat(matches[2], 64); err != nil {
			return 0, false
		}
	}

	result := coeff * math.Pi

	if matches[3] != "" {
		denom, err := strconv.ParseFloat(matches[3], 64)
		if err != nil || denom == 0 {
			return 0, false
		}
		result /= denom
	}

	if matches[1] == "-" {
		result = -result
	}

	return result, true
}
