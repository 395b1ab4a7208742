package terminal

import (
	"os"
	"testing"
)

func TestSetupIdempotent(t *testing.T) {
	if err := Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := Setup(); err != nil {
		t.Fatalf("second Setup: %v", err)
	}
}

func TestIsTTYOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()
	if IsTTY(r) || IsTTY(w) {
		t.Error("pipe ends should not be terminals")
	}
}
