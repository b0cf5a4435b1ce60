// Package dbgx is the extended variant of package dbg. It carries the same
// Msgf and Form constructs under its own build tag, `debugx`, and adds Value
// for printing a computed value without returning it.
//
// Because Go evaluates call arguments unconditionally, zero-cost use of Value
// in release builds requires the guard idiom:
//
//	if dbgx.Enabled {
//		dbgx.Value(expensive())
//	}
//
// Enabled is an untagged constant false in release builds, so the compiler
// deletes the guarded block and expensive() is never evaluated. The two
// packages gate on separate tags so a build may enable either, both, or
// neither independently.
package dbgx
