// Package dbg provides build-tag gated debug logging. All of its functions
// compile to no-ops unless the binary is built with the `-tags debug` option,
// so call sites cost nothing in release builds.
//
// Msgf formats and prints a diagnostic line. Form wraps an expression: it
// always returns the expression's value unchanged, and in debug builds it
// additionally prints the expression's source text together with the value.
//
// Enabled is a constant, not a variable. Code guarded with
// `if dbg.Enabled { ... }` is removed entirely by the compiler in release
// builds, including the evaluation of any arguments inside the guard. The
// flag binds when the binary is built; it cannot be flipped at runtime.
package dbg
