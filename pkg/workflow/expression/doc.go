// Package expression provides guard expression evaluation for workflow transitions.
//
// It uses the expr-lang/expr library to evaluate boolean expressions against
// the state snapshot an action just produced. Expressions support:
//
//   - Variable access: phase_status, test_results.tests_passing
//   - Comparisons: ==, !=, <, >, <=, >=
//   - Boolean logic: &&, ||, !
//   - Custom functions: has(map, key), length(collection)
//
// Example expressions:
//
//	phase_status == "tests_written"
//	test_results.tests_passing
//	iteration > 1 && refactor_status == "completed"
//
// The evaluator caches compiled expressions for performance.
//
// Note: The expr library uses "contains" as a string operator (for substring
// matching), so use "has()" for key/membership checks.
package expression
