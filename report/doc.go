// Package report renders profiling results and reads measured samples.
//
// A [growth.Result] is first converted to a [Document], the stable serialized
// form, and then written as text, JSON, YAML or Markdown with [Write].
// [Schema] describes the document as JSON Schema. [ReadSamples] accepts the
// same document, or a bare list of samples, so earlier measurements can be
// classified again.
package report
