package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *CodelabError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *CodelabError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *CodelabError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Filesystem errors

func FileSystemError(operation, path string, cause error) *CodelabError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, operation+" failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

// Hook errors

func HookFailed(hook string, cause error) *CodelabError {
	return Wrap(cause, CategoryHook, SeverityFatal, "post-build hook failed").
		WithContext("hook", hook)
}

// Internal errors

func InternalError(message string, cause error) *CodelabError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
