package buffer

import (
	"reflect"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := New("test", "hello\nworld")

	if b.Name() != "test" {
		t.Errorf("Name() = %q, want %q", b.Name(), "test")
	}
	if b.Text() != "hello\nworld" {
		t.Errorf("Text() = %q, want %q", b.Text(), "hello\nworld")
	}
	if b.Len() != 11 {
		t.Errorf("Len() = %d, want 11", b.Len())
	}
	if b.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", b.LineCount())
	}
}

func TestEmptyBuffer(t *testing.T) {
	b := New("empty", "")

	if !b.IsEmpty() {
		t.Error("IsEmpty() = false for empty buffer")
	}
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
	if got := b.OffsetToPosition(0); got != (Position{}) {
		t.Errorf("OffsetToPosition(0) = %v, want 0:0", got)
	}
	if b.LineFromOffset(0) != 0 {
		t.Errorf("LineFromOffset(0) = %d, want 0", b.LineFromOffset(0))
	}
}

func TestLineFromOffset(t *testing.T) {
	// Offsets:  0-5 "hello\n", 6-11 "world\n", 12.. "go"
	b := New("t", "hello\nworld\ngo")

	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{4, 0},
		{5, 0},  // the newline belongs to line 0
		{6, 1},  // first character of line 1
		{11, 1}, // the newline of line 1
		{12, 2},
		{13, 2},
		{14, 2}, // offset == Len() resolves to the last line
	}

	for _, tt := range tests {
		if got := b.LineFromOffset(tt.offset); got != tt.want {
			t.Errorf("LineFromOffset(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestOffsetToPosition(t *testing.T) {
	b := New("t", "hello\nworld\ngo")

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{0, 0}},
		{3, Position{0, 3}},
		{5, Position{0, 5}},
		{6, Position{1, 0}},
		{8, Position{1, 2}},
		{12, Position{2, 0}},
		{14, Position{2, 2}}, // end of buffer
	}

	for _, tt := range tests {
		if got := b.OffsetToPosition(tt.offset); got != tt.want {
			t.Errorf("OffsetToPosition(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestOffsetToPositionClamps(t *testing.T) {
	b := New("t", "abc")

	if got := b.OffsetToPosition(-1); got != (Position{0, 0}) {
		t.Errorf("OffsetToPosition(-1) = %v, want 0:0", got)
	}
	if got := b.OffsetToPosition(100); got != (Position{0, 3}) {
		t.Errorf("OffsetToPosition(100) = %v, want 0:3", got)
	}
}

func TestPositionToOffset(t *testing.T) {
	b := New("t", "hello\nworld\ngo")

	tests := []struct {
		pos  Position
		want int
	}{
		{Position{0, 0}, 0},
		{Position{0, 5}, 5},
		{Position{0, 99}, 5}, // column clamped to line length
		{Position{1, 2}, 8},
		{Position{2, 2}, 14},
		{Position{-1, 0}, 0},
		{Position{99, 0}, 14}, // line clamped to end of buffer
	}

	for _, tt := range tests {
		if got := b.PositionToOffset(tt.pos); got != tt.want {
			t.Errorf("PositionToOffset(%v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"", []string{""}},
		{"one", []string{"one"}},
		{"one\ntwo", []string{"one", "two"}},
		{"one\ntwo\n", []string{"one", "two", ""}},
		{"\n\n", []string{"", "", ""}},
	}

	for _, tt := range tests {
		b := New("t", tt.text)
		if got := b.Lines(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lines() for %q = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestLineStartAlwaysValidAtZero(t *testing.T) {
	for _, text := range []string{"", "a", "\n", "a\nb"} {
		b := New("t", text)
		if b.LineStart(0) != 0 {
			t.Errorf("LineStart(0) for %q = %d, want 0", text, b.LineStart(0))
		}
	}
}

func TestLineLen(t *testing.T) {
	b := New("t", "hello\nhi\n")

	tests := []struct {
		line int
		want int
	}{
		{0, 5},
		{1, 2},
		{2, 0},
	}

	for _, tt := range tests {
		if got := b.LineLen(tt.line); got != tt.want {
			t.Errorf("LineLen(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestRevisionChangesOnMutation(t *testing.T) {
	b := New("t", "abc")
	r0 := b.Revision()

	if _, err := b.Insert(0, "x"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if b.Revision() == r0 {
		t.Error("Revision unchanged after Insert")
	}
}
