package internal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoDateFound            = errors.New("no valid date found")
	ErrInvalidDateCombination = errors.New("invalid date combination")
	ErrMetadataUnavailable    = errors.New("metadata unavailable")
	ErrInconsistency          = errors.New("metadata date is older than filename date")
	ErrFilesystemOperation    = errors.New("filesystem operation failed")
)

// ErrorCategory represents the type of error encountered
type ErrorCategory string

const (
	ErrorCategoryNoDate        ErrorCategory = "no_date"              // Filename holds no usable year
	ErrorCategoryInvalidDate   ErrorCategory = "invalid_date"         // Date fields do not form a calendar date
	ErrorCategoryMetadata      ErrorCategory = "metadata_unavailable" // exiftool could not read the file
	ErrorCategoryInconsistency ErrorCategory = "inconsistency"        // Metadata and filename disagree
	ErrorCategoryIO            ErrorCategory = "io_error"             // Permissions, missing paths, name conflicts
	ErrorCategoryUnknown       ErrorCategory = "unknown_error"
)

// ErrorSeverity indicates how critical the error is
type ErrorSeverity string

const (
	ErrorSeveritySkip    ErrorSeverity = "skip"    // Nothing to do for this file
	ErrorSeverityWarning ErrorSeverity = "warning" // Needs a look, file left untouched
	ErrorSeverityError   ErrorSeverity = "error"   // Mutation attempted and failed
)

// ProcessError represents a categorized error during file processing
type ProcessError struct {
	FilePath    string
	Category    ErrorCategory
	Severity    ErrorSeverity
	OriginalErr error
	Suggestion  string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("[%s/%s] %s: %v", e.Severity, e.Category, e.FilePath, e.OriginalErr)
}

func (e *ProcessError) Unwrap() error {
	return e.OriginalErr
}

// CategorizeError maps an error onto the taxonomy and attaches a suggestion.
func CategorizeError(filePath string, err error) *ProcessError {
	if err == nil {
		return nil
	}

	var procErr *ProcessError
	if errors.As(err, &procErr) {
		return procErr
	}

	procErr = &ProcessError{
		FilePath:    filePath,
		OriginalErr: err,
	}

	switch {
	case errors.Is(err, ErrNoDateFound):
		procErr.Category = ErrorCategoryNoDate
		procErr.Severity = ErrorSeveritySkip

	case errors.Is(err, ErrInvalidDateCombination):
		procErr.Category = ErrorCategoryInvalidDate
		procErr.Severity = ErrorSeveritySkip
		procErr.Suggestion = "Filename digits do not form a calendar date - rename the file by hand"

	case errors.Is(err, ErrInconsistency):
		procErr.Category = ErrorCategoryInconsistency
		procErr.Severity = ErrorSeverityWarning
		procErr.Suggestion = "Metadata looks wrong for this file - manual intervention required"

	case errors.Is(err, ErrMetadataUnavailable):
		procErr.Category = ErrorCategoryMetadata
		procErr.Severity = ErrorSeverityWarning
		procErr.Suggestion = "Check that exiftool is installed and can read this file"

	case errors.Is(err, ErrFilesystemOperation):
		procErr.Category = ErrorCategoryIO
		procErr.Severity = ErrorSeverityError
		procErr.Suggestion = ioSuggestion(err)

	default:
		procErr.Category = ErrorCategoryUnknown
		procErr.Severity = ErrorSeverityError
		procErr.Suggestion = "Unexpected error - check the report for details"
	}

	return procErr
}

func ioSuggestion(err error) string {
	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "permission denied"):
		return "Check file permissions on the target directory"
	case strings.Contains(errStr, "read-only file system"):
		return "Target filesystem is read-only - check mount options"
	case strings.Contains(errStr, "no space left"):
		return "Free up disk space on the destination drive and retry"
	case strings.Contains(errStr, "already exists"):
		return "A file with the target name exists - resolve the conflict manually"
	case strings.Contains(errStr, "no such file"):
		return "File disappeared during the run - check if an external drive disconnected"
	default:
		return ""
	}
}

// ReportError means the report file could not be created or written. It is
// the only error that aborts a run.
type ReportError struct {
	Path string
	Err  error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report file %s: %v", e.Path, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}
