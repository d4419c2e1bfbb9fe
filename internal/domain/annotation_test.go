package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseAnnotation(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Annotation
		wantErr string
	}{
		{
			name: "valid line",
			line: "0 0.5 0.5 0.2 0.2",
			want: Annotation{Class: 0, XCenter: 0.5, YCenter: 0.5, Width: 0.2, Height: 0.2},
		},
		{
			name: "boundaries inclusive",
			line: "5 0 1 0.0 1.0",
			want: Annotation{Class: 5, XCenter: 0, YCenter: 1, Width: 0, Height: 1},
		},
		{
			name: "tabs and trailing whitespace",
			line: "1\t0.1  0.1 0.05 0.05 \r",
			want: Annotation{Class: 1, XCenter: 0.1, YCenter: 0.1, Width: 0.05, Height: 0.05},
		},
		{
			name:    "too few fields",
			line:    "0 0.5 0.5 0.2",
			wantErr: "expected 5 fields, got 4",
		},
		{
			name:    "too many fields",
			line:    "0 0.5 0.5 0.2 0.2 0.9",
			wantErr: "expected 5 fields, got 6",
		},
		{
			name:    "blank line",
			line:    "",
			wantErr: "expected 5 fields, got 0",
		},
		{
			name:    "class out of range",
			line:    "7 0.5 0.5 0.1 0.1",
			wantErr: "class index 7 out of range [0, 6)",
		},
		{
			name:    "class equal to count",
			line:    "6 0.5 0.5 0.1 0.1",
			wantErr: "out of range",
		},
		{
			name:    "negative class",
			line:    "-1 0.5 0.5 0.1 0.1",
			wantErr: "out of range",
		},
		{
			name:    "float class",
			line:    "1.0 0.5 0.5 0.1 0.1",
			wantErr: "is not an integer",
		},
		{
			name:    "unparsable coordinate",
			line:    "1 0.5 abc 0.1 0.1",
			wantErr: "is not a number",
		},
		{
			name:    "coordinate above one",
			line:    "1 0.5 0.5 1.01 0.1",
			wantErr: "outside [0, 1]",
		},
		{
			name:    "negative coordinate",
			line:    "1 -0.1 0.5 0.1 0.1",
			wantErr: "outside [0, 1]",
		},
		{
			name:    "NaN coordinate",
			line:    "1 NaN 0.5 0.1 0.1",
			wantErr: "outside [0, 1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnnotation(tt.line, 6)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !errors.Is(err, ErrMalformedAnnotation) {
					t.Errorf("expected ErrMalformedAnnotation, got %T", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAnnotation() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
		wantLine  int // 0 means no error
	}{
		{name: "two lines", content: "0 0.5 0.5 0.2 0.2\n1 0.1 0.1 0.05 0.05", wantCount: 2},
		{name: "trailing newline", content: "0 0.5 0.5 0.2 0.2\n", wantCount: 1},
		{name: "crlf", content: "0 0.5 0.5 0.2 0.2\r\n2 0.5 0.5 0.2 0.2\r\n", wantCount: 2},
		{name: "empty file", content: "", wantCount: 0},
		{name: "bad second line", content: "0 0.5 0.5 0.2 0.2\n7 0.5 0.5 0.1 0.1\n", wantLine: 2},
		{name: "blank line inside", content: "0 0.5 0.5 0.2 0.2\n\n1 0.5 0.5 0.2 0.2\n", wantLine: 2},
		{name: "trailing blank line", content: "0 0.5 0.5 0.2 0.2\n\n", wantLine: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLabel(strings.NewReader(tt.content), 6)
			if tt.wantLine != 0 {
				var annErr *AnnotationError
				if !errors.As(err, &annErr) {
					t.Fatalf("expected *AnnotationError, got %v", err)
				}
				if annErr.Line != tt.wantLine {
					t.Errorf("expected failure at line %d, got %d", tt.wantLine, annErr.Line)
				}
				if got != nil {
					t.Errorf("expected no annotations on failure, got %d", len(got))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("expected %d annotations, got %d", tt.wantCount, len(got))
			}
		})
	}
}
