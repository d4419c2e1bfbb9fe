package application

import (
	"errors"
	"fmt"

	"yolocheck/internal/domain"
)

// Sentinel errors for recovered failure kinds
var (
	ErrSplitMissing        = errors.New("split directory missing")
	ErrCorruptImage        = errors.New("corrupt image")
	ErrMalformedAnnotation = domain.ErrMalformedAnnotation
	ErrDeleteFailed        = errors.New("delete failed")
)

// ValidationError represents an invalid command input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ImageError represents an image that could not be decoded
type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("corrupt image %s: %v", e.Path, e.Err)
}

func (e *ImageError) Unwrap() error { return e.Err }

func (e *ImageError) Is(target error) bool {
	return target == ErrCorruptImage
}

// DeleteError represents a file the filesystem refused to remove
type DeleteError struct {
	Path string
	Err  error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("cannot delete %s: %v", e.Path, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

func (e *DeleteError) Is(target error) bool {
	return target == ErrDeleteFailed
}

// SplitError represents a split that was skipped
type SplitError struct {
	Split    string
	ImageDir string
	LabelDir string
	Err      error // nil when a directory is simply absent
}

func (e *SplitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("split %s skipped (%s or %s): %v", e.Split, e.ImageDir, e.LabelDir, e.Err)
	}
	return fmt.Sprintf("split %s skipped: %s or %s does not exist", e.Split, e.ImageDir, e.LabelDir)
}

func (e *SplitError) Unwrap() error { return e.Err }

func (e *SplitError) Is(target error) bool {
	return target == ErrSplitMissing
}
