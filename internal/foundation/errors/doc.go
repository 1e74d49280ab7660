// Package errors provides the classified error primitives used across docnav.
//
// Every failure that reaches the CLI carries a category (config, validation, render, ...),
// a severity and optional structured context such as the offending entry path.
//
// Example usage:
//
//	err := errors.ValidationError("invalid link").
//		WithContext("path", "nav[2].link").
//		WithCause(cause).
//		Build()
package errors
