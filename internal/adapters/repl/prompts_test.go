package repl

import (
	"bufio"
	"strings"
	"testing"
)

func newReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestReadLine(t *testing.T) {
	t.Parallel()

	value, cancelled := readLine(newReader("  hello \n"), "prompt: ")
	if cancelled {
		t.Fatal("unexpected cancellation")
	}
	if value != "hello" {
		t.Errorf("value = %q, want trimmed input", value)
	}
}

func TestReadLine_CancelSentinel(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"q\n", "Q\n"} {
		if _, cancelled := readLine(newReader(input), "prompt: "); !cancelled {
			t.Errorf("input %q should cancel", strings.TrimSpace(input))
		}
	}
}

func TestReadInt_RepromptsOnBadInput(t *testing.T) {
	t.Parallel()

	n, cancelled := readInt(newReader("abc\n42\n"), "prompt: ")
	if cancelled {
		t.Fatal("unexpected cancellation")
	}
	if n != 42 {
		t.Errorf("n = %d, want 42", n)
	}
}

func TestReadDecimal_StripsCommaGrouping(t *testing.T) {
	t.Parallel()

	d, cancelled := readDecimal(newReader("50,000\n"), "prompt: ")
	if cancelled {
		t.Fatal("unexpected cancellation")
	}
	if d.String() != "50000" {
		t.Errorf("d = %s, want 50000", d)
	}
}

func TestReadDecimal_Cancel(t *testing.T) {
	t.Parallel()

	if _, cancelled := readDecimal(newReader("q\n"), "prompt: "); !cancelled {
		t.Error("q should cancel the decimal prompt")
	}
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
	}
	for _, tt := range tests {
		if got := confirm(newReader(tt.input), "? "); got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", strings.TrimSpace(tt.input), got, tt.want)
		}
	}
}
