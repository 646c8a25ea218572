// Package preprocessor turns the raw text of a SQL artifact into executable
// statements.
//
// Processing happens once per artifact, in two steps:
//
//  1. Substitution: every {KEY} token whose KEY is in the placeholder map is
//     replaced by its value. Tokens with unknown keys are left untouched.
//  2. Splitting: the substituted text is split on ';', each piece is trimmed
//     and empty pieces are dropped.
//
// Substitution is purely textual and splitting does not understand quoting,
// so a ';' inside a string literal or procedure body also ends a statement.
//
// In strict mode the pipeline rejects artifacts that still contain
// placeholder-shaped tokens ({UPPER_SNAKE_CASE}) after substitution. Tokens
// inside SQL comments are ignored by that check.
package preprocessor
