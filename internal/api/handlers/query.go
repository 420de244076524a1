package handlers

import (
	"errors"
	"fmt"
	"geo-calc-service/internal/api/dto"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report query parameter names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("query"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// queryParser accumulates per-parameter issues while reading a query string.
type queryParser struct {
	values url.Values
	issues []dto.ValidationIssue
	failed map[string]bool
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values, failed: map[string]bool{}}
}

// lookup returns the last value supplied for name.
func (p *queryParser) lookup(name string) (string, bool) {
	vs, ok := p.values[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func (p *queryParser) fail(name, typ, msg string, input *string) {
	p.failed[name] = true
	p.issues = append(p.issues, dto.ValidationIssue{
		Type:  typ,
		Loc:   []string{"query", name},
		Msg:   msg,
		Input: input,
	})
}

func (p *queryParser) requiredFloat(name string) float64 {
	raw, ok := p.lookup(name)
	if !ok {
		p.fail(name, "missing", "Field required", nil)
		return 0
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		p.fail(name, "float_parsing", "Input should be a valid number, unable to parse string as a number", &raw)
		return 0
	}
	return f
}

func (p *queryParser) optionalString(name, fallback string) string {
	raw, ok := p.lookup(name)
	if !ok {
		return fallback
	}
	return raw
}

func (p *queryParser) optionalBool(name string, fallback bool) bool {
	raw, ok := p.lookup(name)
	if !ok {
		return fallback
	}

	b, err := parseBool(raw)
	if err != nil {
		p.fail(name, "bool_parsing", "Input should be a valid boolean, unable to interpret input", &raw)
		return fallback
	}
	return b
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "1", "yes", "y", "on":
		return true, nil
	case "false", "f", "0", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("parse bool %q: unrecognized value", raw)
	}
}

func (p *queryParser) coordinates() dto.CoordinatesQuery {
	return dto.CoordinatesQuery{
		StartLat:  p.requiredFloat("start_lat"),
		StartLong: p.requiredFloat("start_long"),
		EndLat:    p.requiredFloat("end_lat"),
		EndLong:   p.requiredFloat("end_long"),
	}
}

// validateStruct runs bounds validation on s and records an issue for every
// failing parameter that was parsed successfully.
func (p *queryParser) validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate query: %w", err)
	}

	for _, fe := range verrs {
		name := fe.Field()
		if p.failed[name] {
			continue
		}

		raw, _ := p.lookup(name)
		switch fe.Tag() {
		case "gte":
			p.fail(name, "greater_than_equal", "Input should be greater than or equal to "+fe.Param(), &raw)
		case "lte":
			p.fail(name, "less_than_equal", "Input should be less than or equal to "+fe.Param(), &raw)
		default:
			p.fail(name, "value_error", "Input is invalid", &raw)
		}
	}
	return nil
}

func parseDistanceQuery(values url.Values) (dto.DistanceQuery, []dto.ValidationIssue, error) {
	p := newQueryParser(values)
	q := dto.DistanceQuery{
		CoordinatesQuery: p.coordinates(),
		UnitMeasure:      p.optionalString("unit_measure", "km"),
	}
	if err := p.validateStruct(q); err != nil {
		return q, nil, err
	}
	return q, p.issues, nil
}

func parseAzimuthQuery(values url.Values) (dto.AzimuthQuery, []dto.ValidationIssue, error) {
	p := newQueryParser(values)
	q := dto.AzimuthQuery{
		CoordinatesQuery:     p.coordinates(),
		ConvertNegativeAngle: p.optionalBool("convert_negative_angle", false),
	}
	if err := p.validateStruct(q); err != nil {
		return q, nil, err
	}
	return q, p.issues, nil
}
