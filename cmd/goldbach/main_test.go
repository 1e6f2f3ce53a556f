package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goldbach/internal/goldbach"
)

func TestParseInt(t *testing.T) {
	if _, err := parseInt("number", "abc"); err == nil {
		t.Fatal("expected error for non-numeric input")
	}

	n, err := parseInt("number", "42")
	if err != nil {
		t.Fatalf("parseInt returned error: %v", err)
	}
	if n != 42 {
		t.Fatalf("expected 42, got %d", n)
	}
}

func TestRunCheck(t *testing.T) {
	logger = zap.NewNop()

	output := captureOutput(t, func() {
		if err := runCheck(&cobra.Command{}, []string{"97"}); err != nil {
			t.Errorf("runCheck returned error: %v", err)
		}
	})
	if !strings.Contains(output, "97 is prime") {
		t.Fatalf("expected primality verdict, got: %s", output)
	}

	output = captureOutput(t, func() {
		if err := runCheck(&cobra.Command{}, []string{"98"}); err != nil {
			t.Errorf("runCheck returned error: %v", err)
		}
	})
	if !strings.Contains(output, "98 is not prime") {
		t.Fatalf("expected composite verdict, got: %s", output)
	}
}

func TestRunPairs_RejectsOddInput(t *testing.T) {
	logger = zap.NewNop()
	t.Chdir(t.TempDir())

	for _, arg := range []string{"7", "2", "0"} {
		if err := runPairs(&cobra.Command{}, []string{arg}); err == nil {
			t.Errorf("runPairs(%s) should reject out-of-domain input", arg)
		}
	}
}

func TestRunPairs_PrintsDecompositions(t *testing.T) {
	logger = zap.NewNop()
	t.Chdir(t.TempDir())

	output := captureOutput(t, func() {
		if err := runPairs(&cobra.Command{}, []string{"10"}); err != nil {
			t.Errorf("runPairs returned error: %v", err)
		}
	})

	if !strings.Contains(output, "2 way(s)") {
		t.Fatalf("expected pair count in output, got: %s", output)
	}
	for _, want := range []string{"3", "7", "5"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestRunRange_Validation(t *testing.T) {
	logger = zap.NewNop()
	t.Chdir(t.TempDir())

	if err := runRange(&cobra.Command{}, []string{"100", "10"}); err == nil {
		t.Error("inverted range should be rejected at the CLI boundary")
	}
	if err := runRange(&cobra.Command{}, []string{"4", "x"}); err == nil {
		t.Error("non-numeric end should be rejected")
	}
}

func TestRunRange_PrintsCounts(t *testing.T) {
	logger = zap.NewNop()
	t.Chdir(t.TempDir())

	output := captureOutput(t, func() {
		if err := runRange(&cobra.Command{}, []string{"4", "10"}); err != nil {
			t.Errorf("runRange returned error: %v", err)
		}
	})

	if !strings.Contains(output, "Analyzed 4 even number(s) from 4 to 10") {
		t.Fatalf("expected range summary, got: %s", output)
	}
}

func TestRunRange_ChartRendersBarsAndScatter(t *testing.T) {
	logger = zap.NewNop()
	t.Chdir(t.TempDir())

	showChart = true
	t.Cleanup(func() { showChart = false })

	output := captureOutput(t, func() {
		if err := runRange(&cobra.Command{}, []string{"4", "10"}); err != nil {
			t.Errorf("runRange returned error: %v", err)
		}
	})

	if !strings.Contains(output, "█") {
		t.Fatalf("expected bar chart in output, got: %s", output)
	}
	if !strings.Contains(output, "●") {
		t.Fatalf("expected scatter of the range's pairs in output, got: %s", output)
	}
}

func TestFormatPairList(t *testing.T) {
	got := formatPairList([]goldbach.Pair{{P1: 3, P2: 7}, {P1: 5, P2: 5}})
	if got != "(3,7) (5,5)" {
		t.Fatalf("formatPairList = %q", got)
	}
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		_, _ = io.Copy(&buf, rErr)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return <-done
}
