package domain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// annotationFields is class index plus four box coordinates
const annotationFields = 5

// maxLineBytes bounds a single annotation line
const maxLineBytes = 1 << 20

// ErrMalformedAnnotation is matched by every AnnotationError
var ErrMalformedAnnotation = errors.New("malformed annotation")

// AnnotationError describes the first invalid line of a label file
type AnnotationError struct {
	Line   int // 1-based, 0 when the file could not be read
	Reason string
}

func (e *AnnotationError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed annotation: %s", e.Reason)
	}
	return fmt.Sprintf("malformed annotation at line %d: %s", e.Line, e.Reason)
}

func (e *AnnotationError) Is(target error) bool {
	return target == ErrMalformedAnnotation
}

// Annotation is one labelled object: class index plus a normalized box
type Annotation struct {
	Class   int
	XCenter float64
	YCenter float64
	Width   float64
	Height  float64
}

// ParseAnnotation parses a single label line against a vocabulary of numClasses.
// The returned error (if any) is an *AnnotationError with Line left at 0.
func ParseAnnotation(line string, numClasses int) (Annotation, error) {
	fields := strings.Fields(line)
	if len(fields) != annotationFields {
		return Annotation{}, &AnnotationError{
			Reason: fmt.Sprintf("expected %d fields, got %d", annotationFields, len(fields)),
		}
	}

	class, err := strconv.Atoi(fields[0])
	if err != nil {
		return Annotation{}, &AnnotationError{Reason: fmt.Sprintf("class index %q is not an integer", fields[0])}
	}
	if class < 0 || class >= numClasses {
		return Annotation{}, &AnnotationError{
			Reason: fmt.Sprintf("class index %d out of range [0, %d)", class, numClasses),
		}
	}

	var coords [4]float64
	for i, field := range fields[1:] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Annotation{}, &AnnotationError{Reason: fmt.Sprintf("coordinate %q is not a number", field)}
		}
		// NaN fails both comparisons
		if !(v >= 0 && v <= 1) {
			return Annotation{}, &AnnotationError{Reason: fmt.Sprintf("coordinate %s outside [0, 1]", field)}
		}
		coords[i] = v
	}

	return Annotation{
		Class:   class,
		XCenter: coords[0],
		YCenter: coords[1],
		Width:   coords[2],
		Height:  coords[3],
	}, nil
}

// ParseLabel reads every line of a label file. A single bad line rejects the
// whole file; blank lines count as lines and are therefore rejected too.
func ParseLabel(r io.Reader, numClasses int) ([]Annotation, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var annotations []Annotation
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		a, err := ParseAnnotation(scanner.Text(), numClasses)
		if err != nil {
			var annErr *AnnotationError
			if errors.As(err, &annErr) {
				annErr.Line = lineNo
			}
			return nil, err
		}
		annotations = append(annotations, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, &AnnotationError{Reason: fmt.Sprintf("read failed: %v", err)}
	}
	return annotations, nil
}
