// Package stringtest builds multi-line strings for tests, such as YAML sample
// and config fixtures written as indented raw string literals.
package stringtest
