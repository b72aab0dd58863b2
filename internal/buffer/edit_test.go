package buffer

import "testing"

func TestInsert(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		insert string
		want   string
		end    int
	}{
		{"at start", "world", 0, "hello ", "hello world", 6},
		{"at end", "hello", 5, "!", "hello!", 6},
		{"in middle", "held", 2, "llo wor", "hello world", 9},
		{"empty text", "abc", 1, "", "abc", 1},
		{"newline reindexes", "ab", 1, "\n", "a\nb", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("t", tt.text)
			end, err := b.Insert(tt.offset, tt.insert)
			if err != nil {
				t.Fatalf("Insert: %v", err)
			}
			if b.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", b.Text(), tt.want)
			}
			if end != tt.end {
				t.Errorf("end = %d, want %d", end, tt.end)
			}
		})
	}
}

func TestInsertOutOfRange(t *testing.T) {
	b := New("t", "abc")

	if _, err := b.Insert(-1, "x"); err != ErrOffsetOutOfRange {
		t.Errorf("Insert(-1) error = %v, want ErrOffsetOutOfRange", err)
	}
	if _, err := b.Insert(4, "x"); err != ErrOffsetOutOfRange {
		t.Errorf("Insert(4) error = %v, want ErrOffsetOutOfRange", err)
	}
	if b.Text() != "abc" {
		t.Errorf("content changed after failed insert: %q", b.Text())
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		want       string
	}{
		{"from start", "hello", 0, 2, "llo"},
		{"to end", "hello", 3, 5, "hel"},
		{"middle", "hello", 1, 4, "ho"},
		{"empty range", "hello", 2, 2, "hello"},
		{"across newline", "a\nb", 1, 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("t", tt.text)
			if err := b.Delete(tt.start, tt.end); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if b.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", b.Text(), tt.want)
			}
		})
	}
}

func TestDeleteInvalidRange(t *testing.T) {
	b := New("t", "abc")

	for _, r := range [][2]int{{-1, 2}, {2, 1}, {0, 4}} {
		if err := b.Delete(r[0], r[1]); err != ErrRangeInvalid {
			t.Errorf("Delete(%d, %d) error = %v, want ErrRangeInvalid", r[0], r[1], err)
		}
	}
}

func TestReplace(t *testing.T) {
	b := New("t", "hello world")

	end, err := b.Replace(6, 11, "zeno")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if b.Text() != "hello zeno" {
		t.Errorf("Text() = %q, want %q", b.Text(), "hello zeno")
	}
	if end != 10 {
		t.Errorf("end = %d, want 10", end)
	}
}

func TestSetText(t *testing.T) {
	b := New("t", "old")
	r0 := b.Revision()

	b.SetText("new\ncontent")
	if b.Text() != "new\ncontent" {
		t.Errorf("Text() = %q", b.Text())
	}
	if b.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", b.LineCount())
	}
	if b.Revision() == r0 {
		t.Error("Revision unchanged after SetText")
	}
}

func TestDeleteLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
		want string
	}{
		{"first of three", "a\nb\nc", 0, "b\nc"},
		{"middle", "a\nb\nc", 1, "a\nc"},
		{"last takes preceding newline", "a\nb\nc", 2, "a\nb"},
		{"only line", "solo", 0, ""},
		{"empty trailing line", "a\n", 1, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("t", tt.text)
			if err := b.DeleteLine(tt.line); err != nil {
				t.Fatalf("DeleteLine: %v", err)
			}
			if b.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", b.Text(), tt.want)
			}
		})
	}
}

func TestLineTableTracksMutations(t *testing.T) {
	b := New("t", "one")

	if _, err := b.Insert(3, "\ntwo"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if b.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", b.LineCount())
	}
	if got := b.OffsetToPosition(4); got != (Position{1, 0}) {
		t.Errorf("OffsetToPosition(4) = %v, want 1:0", got)
	}

	if err := b.Delete(3, 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1 after deleting newline", b.LineCount())
	}
}
