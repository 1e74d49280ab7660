package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext(ContextFile, "docnav.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}
		file, exists := err.Context().GetString(ContextFile)
		if !exists || file != "docnav.yaml" {
			t.Errorf("expected context file=docnav.yaml, got %v", file)
		}
	})

	t.Run("Path is part of the message", func(t *testing.T) {
		err := ValidationError("link must not be empty").WithPath("nav[3].link").Build()
		want := "[validation:fatal] link must not be empty (at nav[3].link)"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
		if err.Path() != "nav[3].link" {
			t.Errorf("expected path nav[3].link, got %s", err.Path())
		}
	})

	t.Run("Detection through wrapping", func(t *testing.T) {
		err := fmt.Errorf("load: %w", ConfigError("bad version").Build())

		if _, ok := AsClassified(err); !ok {
			t.Error("expected wrapped error to be classified")
		}
		if !HasCategory(err, CategoryConfig) {
			t.Error("expected error to have config category")
		}
		if GetSeverity(err) != SeverityFatal {
			t.Errorf("expected fatal severity, got %s", GetSeverity(err))
		}
	})

	t.Run("Defaults for unclassified errors", func(t *testing.T) {
		err := errors.New("plain")
		if HasCategory(err, CategoryInternal) {
			t.Error("expected an unclassified error to carry no category")
		}
		if GetSeverity(err) != SeverityError {
			t.Errorf("expected error severity, got %s", GetSeverity(err))
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("original error")
		err := WrapError(originalErr, CategoryFileSystem, "write failed").
			Warning().
			WithContext(ContextFile, "site/hugo.yaml").
			Build()

		if err.Category() != CategoryFileSystem {
			t.Errorf("expected category %s, got %s", CategoryFileSystem, err.Category())
		}
		if err.Severity() != SeverityWarning {
			t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			severity ErrorSeverity
		}{
			{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal},
			{"ValidationError", ValidationError("test"), CategoryValidation, SeverityFatal},
			{"NotFoundError", NotFoundError("test"), CategoryNotFound, SeverityError},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityError},
			{"RenderError", RenderError("test"), CategoryRender, SeverityFatal},
			{"GitError", GitError("test"), CategoryGit, SeverityWarning},
			{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if err.Severity() != tt.severity {
					t.Errorf("expected severity %s, got %s", tt.severity, err.Severity())
				}
			})
		}
	})
}

func TestClassifiedError_WithContext(t *testing.T) {
	base := ValidationError("link must not be empty").WithPath("nav[0].link").Build()
	derived := base.WithContext(ContextFile, "docnav.yaml")

	if _, ok := base.Context().GetString(ContextFile); ok {
		t.Error("expected the original error to keep its context")
	}
	if file, _ := derived.Context().GetString(ContextFile); file != "docnav.yaml" {
		t.Errorf("expected file docnav.yaml, got %q", file)
	}
	if derived.Path() != "nav[0].link" || derived.Category() != CategoryValidation {
		t.Errorf("expected path and category to carry over, got %s %s", derived.Path(), derived.Category())
	}

	var empty ClassifiedError
	if got := empty.WithContext(ContextPath, "sidebar"); got.Path() != "sidebar" {
		t.Errorf("expected context on an error without one, got %q", got.Path())
	}
}

func TestErrorContext(t *testing.T) {
	var ctx ErrorContext
	ctx = ctx.Set(ContextPath, "sidebar[\"/guides/\"]").Set(ContextValue, 3)

	path, ok := ctx.GetString(ContextPath)
	if !ok || path != `sidebar["/guides/"]` {
		t.Errorf("expected path to be set, got %q", path)
	}
	if _, ok := ctx.GetString(ContextValue); ok {
		t.Error("expected non-string value to be rejected by GetString")
	}
	if _, ok := ErrorContext(nil).Get(ContextFile); ok {
		t.Error("expected nil context lookup to miss")
	}
}
