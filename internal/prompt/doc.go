// Package prompt collects answers from a line-based reader as an ordered
// pipeline of steps. The pipeline stops at the first empty answer.
package prompt
