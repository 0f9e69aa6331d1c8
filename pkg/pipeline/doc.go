// Package pipeline provides tiny helpers for composing chains of pure
// transforms. Message rendering across the module is written as left-to-right
// pipelines of unary functions; Apply and Compose keep those chains readable
// without intermediate variables.
package pipeline
