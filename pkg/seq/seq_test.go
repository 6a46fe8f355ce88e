package seq

import (
	"errors"
	"reflect"
	"testing"
)

func TestAt(t *testing.T) {
	s := New[int64](1, 2, 3, 4, 5)

	for i := -2; i < s.Len()+3; i++ {
		got, err := s.At(i)
		inRange := i >= 0 && i < s.Len()

		if !inRange {
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("At(%d) error = %v, want ErrIndexOutOfRange", i, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("At(%d) error = %v, want nil", i, err)
			continue
		}
		if got != int64(i+1) {
			t.Errorf("At(%d) = %d, want %d", i, got, i+1)
		}
	}
}

func TestSliceMatchesParent(t *testing.T) {
	s := New(10, 20, 30, 40, 50)

	for start := 0; start <= s.Len(); start++ {
		for end := start; end <= s.Len(); end++ {
			v, err := s.Slice(start, end)
			if err != nil {
				t.Fatalf("Slice(%d, %d) error = %v", start, end, err)
			}
			if v.Len() != end-start || v.Offset() != start {
				t.Errorf("Slice(%d, %d) len/offset = %d/%d", start, end, v.Len(), v.Offset())
			}
			for k := 0; k < v.Len(); k++ {
				got, _ := v.At(k)
				want, _ := s.At(start + k)
				if got != want {
					t.Errorf("Slice(%d, %d).At(%d) = %d, want %d", start, end, k, got, want)
				}
			}
		}
	}
}

func TestSliceErrors(t *testing.T) {
	s := New(1, 2, 3, 4, 5)

	tests := []struct {
		name       string
		start, end int
	}{
		{"Start after end", 3, 1},
		{"End past length", 2, 6},
		{"Negative start", -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Slice(tt.start, tt.end)
			var ie *IndexError
			if !errors.As(err, &ie) || !ie.Range {
				t.Errorf("Slice(%d, %d) error = %v, want range *IndexError", tt.start, tt.end, err)
			}
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("Slice(%d, %d) error does not match ErrIndexOutOfRange", tt.start, tt.end)
			}
		})
	}
}

func TestViewOutOfRange(t *testing.T) {
	v, err := New(1, 2, 3, 4, 5).Slice(1, 3)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}
	if _, err := v.At(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("View.At(2) error = %v, want ErrIndexOutOfRange", err)
	}
	if got := v.Values(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("Values() = %v, want [2 3]", got)
	}
}

func TestNewCopiesInput(t *testing.T) {
	arr := [3]int{1, 2, 3}
	s := FromArray(arr[:])
	arr[0] = 99

	if got := s.MustAt(0); got != 1 {
		t.Errorf("MustAt(0) = %d, want 1", got)
	}

	vals := s.Values()
	vals[1] = 99
	if got := s.MustAt(1); got != 2 {
		t.Errorf("MustAt(1) after editing Values() = %d, want 2", got)
	}
}

func TestRepeatFirstLast(t *testing.T) {
	s := Repeat(0, 5)
	if s.Len() != 5 || s.String() != "[0 0 0 0 0]" {
		t.Errorf("Repeat(0, 5) = %v", s)
	}

	arr := New(10, 20, 30, 40, 50)
	first, _ := arr.First()
	last, _ := arr.Last()
	if first != 10 || last != 50 {
		t.Errorf("First/Last = %d/%d, want 10/50", first, last)
	}

	if _, err := New[int]().Last(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("empty Last() error = %v, want ErrIndexOutOfRange", err)
	}

	tail, err := New(1, 2, 3).SliceFrom(1)
	if err != nil || tail.String() != "[2 3]" {
		t.Errorf("SliceFrom(1) = %v, %v", tail, err)
	}
}

func TestMustAtPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("recover() = %v, want *IndexError", r)
		}
	}()
	New(1, 2, 3).MustAt(99)
}
