package errors

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestCodelabError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CodelabError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestCodelabError_WithContext(t *testing.T) {
	err := New(CategoryFileSystem, SeverityFatal, "copy failed").
		WithContext("path", "/tmp/site").
		WithContext("operation", "copy")

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}

	if err.Context["path"] != "/tmp/site" {
		t.Errorf("Context[path] = %v, want /tmp/site", err.Context["path"])
	}

	if err.Context["operation"] != "copy" {
		t.Errorf("Context[operation] = %v, want copy", err.Context["operation"])
	}
}

func TestIsCategory(t *testing.T) {
	configErr := New(CategoryConfig, SeverityFatal, "config error")
	fsErr := FileSystemError("copy", "/tmp/x", fs.ErrPermission)
	wrappedFsErr := fmt.Errorf("outer: %w", fsErr)
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match filesystem category", configErr, CategoryFileSystem, false},
		{"filesystem error matches filesystem category", fsErr, CategoryFileSystem, true},
		{"wrapped filesystem error still matches", wrappedFsErr, CategoryFileSystem, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCategory(test.err, test.category)
			if result != test.expected {
				t.Errorf("IsCategory() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestGetCategory(t *testing.T) {
	if got := GetCategory(fmt.Errorf("plain")); got != CategoryInternal {
		t.Errorf("GetCategory(plain) = %v, want %v", got, CategoryInternal)
	}
	if got := GetCategory(HookFailed("copy-codelabs", fs.ErrNotExist)); got != CategoryHook {
		t.Errorf("GetCategory(hook) = %v, want %v", got, CategoryHook)
	}
}

func TestConvenienceFunctions(t *testing.T) {
	t.Run("ConfigNotFound", func(t *testing.T) {
		err := ConfigNotFound("/path/to/mkdocs.yml")
		if err.Category != CategoryConfig {
			t.Errorf("Category = %v, want %v", err.Category, CategoryConfig)
		}
		if err.Severity != SeverityFatal {
			t.Errorf("Severity = %v, want %v", err.Severity, SeverityFatal)
		}
		if err.Context["path"] != "/path/to/mkdocs.yml" {
			t.Errorf("Context[path] = %v, want /path/to/mkdocs.yml", err.Context["path"])
		}
	})

	t.Run("FileSystemError", func(t *testing.T) {
		err := FileSystemError("remove", "/site/codelabs/web/basics", fs.ErrPermission)
		if err.Category != CategoryFileSystem {
			t.Errorf("Category = %v, want %v", err.Category, CategoryFileSystem)
		}
		if !stdErrors.Is(err, fs.ErrPermission) {
			t.Errorf("Cause should match wrapped cause: %v", fs.ErrPermission)
		}
		if err.Context["operation"] != "remove" {
			t.Errorf("Context[operation] = %v, want remove", err.Context["operation"])
		}
	})

	t.Run("ValidationFailed", func(t *testing.T) {
		err := ValidationFailed("docs_dir", "must not be empty")
		if err.Category != CategoryValidation {
			t.Errorf("Category = %v, want %v", err.Category, CategoryValidation)
		}
		if err.Context["field"] != "docs_dir" {
			t.Errorf("Context[field] = %v, want docs_dir", err.Context["field"])
		}
		if err.Context["reason"] != "must not be empty" {
			t.Errorf("Context[reason] = %v, want must not be empty", err.Context["reason"])
		}
	})
}
