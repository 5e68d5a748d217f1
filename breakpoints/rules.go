package breakpoints

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNoMatch is returned by Eval when no rule matches and there is no
// default.
var ErrNoMatch = errors.New("breakpoints: no rule matches")

type compareOp uint8

const (
	opAlways compareOp = iota
	opGE
	opGT
	opLE
	opLT
)

type resultKind uint8

const (
	resultFixed resultKind = iota
	resultPercent
	resultPer
)

// Rule is one compiled rule.
type Rule struct {
	op     compareOp
	bound  float64
	kind   resultKind
	amount float64
	source string
}

// Matches reports whether the rule's guard accepts x.
func (r Rule) Matches(x float64) bool {
	switch r.op {
	case opGE:
		return x >= r.bound
	case opGT:
		return x > r.bound
	case opLE:
		return x <= r.bound
	case opLT:
		return x < r.bound
	}
	return true
}

// Apply computes the rule's result for x.
func (r Rule) Apply(x float64) float64 {
	switch r.kind {
	case resultPercent:
		return x * r.amount / 100
	case resultPer:
		return math.Max(1, math.Floor(x/r.amount))
	}
	return r.amount
}

// String returns the rule in source form.
func (r Rule) String() string { return r.source }

// Ruleset is an ordered list of rules.
type Ruleset struct {
	rules []Rule
}

// Parse compiles src into a Ruleset.
func Parse(src string) (*Ruleset, error) {
	file, err := parseRuleFile(src)
	if err != nil {
		return nil, fmt.Errorf("breakpoints: %w", err)
	}

	rs := &Ruleset{rules: make([]Rule, 0, len(file.Rules))}
	sawDefault := false
	for _, node := range file.Rules {
		if sawDefault {
			return nil, fmt.Errorf("breakpoints: %s: rule after default is unreachable", node.Pos)
		}
		rule, err := compileRule(node)
		if err != nil {
			return nil, fmt.Errorf("breakpoints: %s: %w", node.Pos, err)
		}
		sawDefault = rule.op == opAlways
		rs.rules = append(rs.rules, rule)
	}
	if len(rs.rules) == 0 {
		return nil, errors.New("breakpoints: no rules")
	}
	return rs, nil
}

// MustParse is like Parse but panics on error. Use it for rule sets
// compiled into the program.
func MustParse(src string) *Ruleset {
	rs, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return rs
}

// Rules returns the compiled rules in evaluation order.
func (rs *Ruleset) Rules() []Rule {
	return append([]Rule(nil), rs.rules...)
}

// Eval returns the result of the first rule whose guard accepts x.
func (rs *Ruleset) Eval(x float64) (float64, error) {
	for _, r := range rs.rules {
		if r.Matches(x) {
			return r.Apply(x), nil
		}
	}
	return 0, fmt.Errorf("%w for %g", ErrNoMatch, x)
}

// Float is Eval with 0 for no match.
func (rs *Ruleset) Float(x float64) float64 {
	v, err := rs.Eval(x)
	if err != nil {
		return 0
	}
	return v
}

// Int truncates Float(x) toward zero.
func (rs *Ruleset) Int(x float64) int {
	return int(rs.Float(x))
}

// String returns the rules joined with "; ".
func (rs *Ruleset) String() string {
	parts := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		parts[i] = r.source
	}
	return strings.Join(parts, "; ")
}

func compileRule(node *ruleNode) (Rule, error) {
	var r Rule
	var guard string

	switch {
	case node.Guard.Default:
		r.op = opAlways
		guard = "default"
	case node.Guard.Compare != nil:
		cmp := node.Guard.Compare
		bound, unit, err := parseNumber(cmp.Bound)
		if err != nil {
			return r, err
		}
		if unit == "%" {
			return r, fmt.Errorf("guard %q cannot be a percentage", cmp.Bound)
		}
		r.bound = bound
		switch cmp.Op {
		case ">=":
			r.op = opGE
		case ">":
			r.op = opGT
		case "<=":
			r.op = opLE
		case "<":
			r.op = opLT
		default:
			return r, fmt.Errorf("unknown comparison %q", cmp.Op)
		}
		guard = cmp.Op + " " + cmp.Bound
	}

	var result string
	switch {
	case node.Result.Per != nil:
		n, unit, err := parseNumber(*node.Result.Per)
		if err != nil {
			return r, err
		}
		if unit == "%" || n <= 0 {
			return r, fmt.Errorf("per %q must be a positive length", *node.Result.Per)
		}
		r.kind = resultPer
		r.amount = n
		result = "per " + *node.Result.Per
	case node.Result.Value != nil:
		n, unit, err := parseNumber(*node.Result.Value)
		if err != nil {
			return r, err
		}
		r.kind = resultFixed
		if unit == "%" {
			r.kind = resultPercent
		}
		r.amount = n
		result = *node.Result.Value
	}

	r.source = guard + " => " + result
	return r, nil
}

// parseNumber splits a Number token into its value and unit suffix.
func parseNumber(tok string) (float64, string, error) {
	unit := ""
	switch {
	case strings.HasSuffix(tok, "px"):
		unit = "px"
	case strings.HasSuffix(tok, "%"):
		unit = "%"
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(tok, unit), 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid number %q: %w", tok, err)
	}
	return v, unit, nil
}
