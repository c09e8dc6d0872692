// Package prompt builds the instruction sent to the language model from the
// user's input mode and text.
//
// The template is static and requests a fixed, ordered list of plan sections.
// User text is interpolated verbatim: nothing is escaped or trimmed, and
// validation of empty input is left to the caller.
package prompt
