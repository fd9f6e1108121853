package filter

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WherePlaceholder marks the spot in a base query where the generated
// WHERE clause is substituted.
const WherePlaceholder = "{where}"

// Filter accumulates predicate fragments and their parameter values in
// call order. Fragments use positional `?` placeholders, so the renderers
// never reorder, sort, or deduplicate anything: the Nth placeholder across
// the joined fragments always binds the Nth value.
//
// A Filter built over a base query template renders a complete statement;
// one built with NewPredicate renders a bare conjunction for embedding
// inside a parent filter.
type Filter struct {
	base   string
	where  []string
	values []interface{}
	err    error
}

// NewFilter starts a filter over a base query template. The template must
// contain the {where} placeholder if any constraint is ever added.
func NewFilter(baseQuery string) *Filter {
	return &Filter{base: baseQuery}
}

// NewPredicate starts a filter that renders as a bare predicate, used as a
// building block for sub-filters and OR branches.
func NewPredicate() *Filter {
	return &Filter{}
}

// Empty reports whether no fragment has been accumulated.
func (f *Filter) Empty() bool {
	return len(f.where) == 0
}

// AddEquality adds `column = value` when value is present. Integers are
// inlined as literals; strings always go through a placeholder so user
// input never reaches the SQL text. Nil and blank values are skipped.
func (f *Filter) AddEquality(column string, value interface{}) *Filter {
	return f.addComparison(column, value, "=")
}

// AddInequality adds `column <> value` with the same presence and
// placeholder rules as AddEquality.
func (f *Filter) AddInequality(column string, value interface{}) *Filter {
	return f.addComparison(column, value, "<>")
}

func (f *Filter) addComparison(column string, value interface{}, op string) *Filter {
	switch v := value.(type) {
	case nil:
	case int:
		f.where = append(f.where, column+" "+op+" "+strconv.Itoa(v))
	case *int:
		if v != nil {
			f.addComparison(column, *v, op)
		}
	case string:
		if strings.TrimSpace(v) != "" {
			f.where = append(f.where, column+" "+op+" ?")
			f.values = append(f.values, v)
		}
	case *string:
		if v != nil {
			f.addComparison(column, *v, op)
		}
	default:
		f.fail(errors.Errorf("unsupported constraint type %T for column %s", value, column))
	}
	return f
}

// AddRange constrains column strictly between the bounds of r. Bounds are
// exclusive by contract. An empty range contributes nothing; a one-sided
// range contributes a single comparison. Both comparisons land in one
// fragment so the range reads as a unit.
func (f *Filter) AddRange(column string, r Range) *Filter {
	var parts []string
	if r.Lower != nil {
		parts = append(parts, column+" > ?")
		f.values = append(f.values, *r.Lower)
	}
	if r.Upper != nil {
		parts = append(parts, column+" < ?")
		f.values = append(f.values, *r.Upper)
	}
	if len(parts) > 0 {
		f.where = append(f.where, strings.Join(parts, " AND "))
	}
	return f
}

// AddSet constrains column to the members of s. An absent or empty set is
// a no-op, a single element degenerates to equality, and anything larger
// renders one IN list with a placeholder per element.
func (f *Filter) AddSet(column string, s *Set) *Filter {
	switch s.Len() {
	case 0:
		return f
	case 1:
		one, _ := s.One()
		return f.AddEquality(column, one)
	}
	placeholders := make([]string, 0, s.Len())
	for _, v := range s.Values() {
		placeholders = append(placeholders, "?")
		f.values = append(f.values, v)
	}
	f.where = append(f.where, column+" IN ("+strings.Join(placeholders, ", ")+")")
	return f
}

// AddSubFilter renders child and embeds it, parenthesized, as a single
// fragment. The child's parameters are spliced in right after the parent's
// current ones, preserving the child's own ordering. A child that renders
// to nothing is skipped.
func (f *Filter) AddSubFilter(child *Filter) *Filter {
	if child == nil {
		return f
	}
	sql, vals, err := child.render()
	if err != nil {
		return f.fail(err)
	}
	if strings.TrimSpace(sql) == "" {
		return f
	}
	f.where = append(f.where, "("+sql+")")
	f.values = append(f.values, vals...)
	return f
}

// AddStatic appends a literal predicate and its parameters verbatim, for
// conditions the other primitives cannot express.
func (f *Filter) AddStatic(predicate string, values ...interface{}) *Filter {
	f.where = append(f.where, predicate)
	f.values = append(f.values, values...)
	return f
}

// AddOr evaluates two branch constructions against independent scratch
// filters and merges the outcome. Two empty branches contribute nothing; a
// single non-empty branch is spliced in as if it had been built on f
// directly; two non-empty branches become one parenthesized disjunction
// with parameters in left-then-right order.
func (f *Filter) AddOr(left, right func(*Filter)) *Filter {
	a := NewPredicate()
	left(a)
	b := NewPredicate()
	right(b)
	if a.err != nil {
		return f.fail(a.err)
	}
	if b.err != nil {
		return f.fail(b.err)
	}

	switch {
	case a.Empty() && b.Empty():
	case b.Empty():
		f.splice(a)
	case a.Empty():
		f.splice(b)
	default:
		f.where = append(f.where, "("+a.Predicate()+" OR "+b.Predicate()+")")
		f.values = append(f.values, a.values...)
		f.values = append(f.values, b.values...)
	}
	return f
}

func (f *Filter) splice(other *Filter) {
	f.where = append(f.where, other.where...)
	f.values = append(f.values, other.values...)
}

func (f *Filter) fail(err error) *Filter {
	if f.err == nil {
		f.err = err
	}
	return f
}

// Predicate renders the bare conjunction of fragments with no WHERE
// keyword and no template substitution.
func (f *Filter) Predicate() string {
	return strings.Join(f.where, " AND ")
}

// Statement substitutes the generated WHERE clause into the base query
// template and returns the final SQL text with its positional parameters.
// An empty filter substitutes the empty string; a non-empty filter over a
// template without the placeholder is a programming error.
func (f *Filter) Statement() (string, []interface{}, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	if len(f.where) > 0 && !strings.Contains(f.base, WherePlaceholder) {
		return "", nil, errors.Errorf("query template %q has no %s placeholder", f.base, WherePlaceholder)
	}
	clause := ""
	if len(f.where) > 0 {
		clause = "WHERE " + f.Predicate()
	}
	return strings.ReplaceAll(f.base, WherePlaceholder, clause), f.values, nil
}

func (f *Filter) render() (string, []interface{}, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	if f.base == "" {
		return f.Predicate(), f.values, nil
	}
	return f.Statement()
}
