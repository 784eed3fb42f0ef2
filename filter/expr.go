package filter

import (
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/thoth/structure"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	env := maps.Clone(c.helperFuncs)
	maps.Copy(env, recordHelperStubs())

	// record fields are only known at run time
	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}
	if c.cache != nil {
		c.cache.Put(expression, filter)
	}
	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// Evaluate reports whether the record matches; evaluation errors count as no match
func (f *exprFilter) Evaluate(r *structure.Record) bool {
	ok, err := f.Match(r)
	return err == nil && ok
}

// Match runs the program against the record
func (f *exprFilter) Match(r *structure.Record) (bool, error) {
	if r == nil {
		return false, nil
	}
	result, err := expr.Run(f.program, createRuntimeEnvironment(r, f.helpers))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Record: r.String(), Err: err}
	}
	return result.(bool), nil
}

func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)

	// Date helpers
	funcs["now"] = time.Now
	funcs["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	funcs["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	funcs["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	funcs["parseDate"] = func(date string) time.Time {
		t, _ := time.Parse(time.DateOnly, date)
		return t
	}
	funcs["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	funcs["year"] = year

	// String helpers, case-insensitive. contains, startsWith and endsWith
	// are expr operators and cannot be redefined.
	funcs["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	funcs["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	funcs["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	funcs["lower"] = strings.ToLower
	funcs["upper"] = strings.ToUpper
	return funcs
}

// year returns the year of a date such as 2021-03-04, or 0
func year(date any) int {
	s, _ := date.(string)
	if len(s) < 4 {
		return 0
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0
	}
	return y
}

// recordHelperStubs declares the per-record helpers so the compiler can
// type-check calls to them.
func recordHelperStubs() map[string]any {
	return map[string]any{
		"get":            func(string) any { return nil },
		"has":            func(string) bool { return false },
		"str":            func(string) string { return "" },
		"num":            func(string) float64 { return 0 },
		"count":          func(string) int { return 0 },
		"hasContributor": func(string) bool { return false },
		"hasSubject":     func(string) bool { return false },
		"Typename":       "",
		"Display":        "",
	}
}

// createRuntimeEnvironment exposes the record's top-level fields as
// variables together with the helpers
func createRuntimeEnvironment(r *structure.Record, helpers map[string]any) map[string]any {
	env := r.Plain()
	if env == nil {
		env = make(map[string]any, len(helpers)+9)
	}
	maps.Copy(env, helpers)

	env["get"] = r.Value
	env["has"] = r.Has
	env["str"] = r.Str
	env["num"] = r.Float
	env["count"] = r.Len
	env["hasContributor"] = createHasContributorFunc(r)
	env["hasSubject"] = createHasSubjectFunc(r)
	env["Typename"] = r.Typename()
	env["Display"] = r.String()
	return env
}

func createHasContributorFunc(r *structure.Record) func(string) bool {
	return func(name string) bool {
		for _, c := range r.List("contributions") {
			if strings.Contains(strings.ToLower(c.Str("fullName")), strings.ToLower(name)) {
				return true
			}
		}
		return false
	}
}

func createHasSubjectFunc(r *structure.Record) func(string) bool {
	return func(code string) bool {
		for _, s := range r.List("subjects") {
			if strings.EqualFold(s.Str("subjectCode"), code) {
				return true
			}
		}
		return false
	}
}
