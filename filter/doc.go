// Package filter selects records with expr-lang expressions.
//
// Top-level record fields are variables, so a works listing can be narrowed
// with expressions such as:
//
//	workType == "MONOGRAPH" and year(publicationDate) >= 2020
//	hasContributor("smith") or icontains(str("fullTitle"), "open access")
//	get("imprint.publisher.publisherName") == "Punctum Books"
//	count("contributions") > 3 and has("doi")
//	lower(str("place")) startsWith "lon"
//
// icontains, hasPrefix and hasSuffix compare case-insensitively; the infix
// contains, startsWith and endsWith operators are case-sensitive.
//
// # Usage
//
//	compiler := filter.NewExprCompiler(filter.WithCache(32))
//	f, err := compiler.Compile(`pageCount > 200`)
//	if err != nil {
//		return err
//	}
//	matches, err := filter.NewConcurrentEvaluator().Select(ctx, f, records)
//
// # Error Handling
//
// Compile returns a *CompilationError for empty or malformed expressions.
// Evaluate treats records an expression cannot run against as non-matching;
// Match returns the *EvaluationError instead.
package filter
