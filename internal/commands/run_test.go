package commands_test

import (
	"context"
	"strings"
	"testing"

	"marquee/internal/movies"
)

func TestRunExitsOnZero(t *testing.T) {
	h := newHarness(t, "0\n")
	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	out := h.out.String()
	if !strings.HasPrefix(out, "\n********** My Movies Database **********\n") {
		t.Fatalf("missing banner in %q", out)
	}
	if !strings.Contains(out, "9. Generate website\n") || !strings.HasSuffix(out, "Goodbye!\n") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunHandlesInvalidInput(t *testing.T) {
	h := newHarness(t, "abc\n42\n\n0\n")
	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	out := h.out.String()
	if !strings.Contains(out, "Invalid input. Please enter a number.") {
		t.Fatalf("missing invalid input message in %q", out)
	}
	if !strings.Contains(out, "Invalid choice. Enter a number between 0 and 9.") {
		t.Fatalf("missing invalid choice message in %q", out)
	}
	if strings.Count(out, "Press enter to continue: ") != 1 {
		t.Fatalf("expected one continue prompt, got %q", out)
	}
}

func TestRunEndOfInputIsClean(t *testing.T) {
	h := newHarness(t, "1\n", heat)
	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("expected clean exit on EOF, got %v", err)
	}
	if !strings.Contains(h.out.String(), "Heat (1995) - Rating: 8.3") {
		t.Fatalf("expected list output in %q", h.out.String())
	}
}

func TestRunReportsCommandErrorsAndContinues(t *testing.T) {
	h := newHarness(t, "3\nAlien\n\n7\nheat\n\n0\n", heat)
	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	out := h.out.String()
	if !strings.Contains(out, "No movies found with the name 'alien'.") {
		t.Fatalf("expected delete failure message in %q", out)
	}
	if !strings.Contains(out, "Heat, Rating: 8.3, Year: 1995") {
		t.Fatalf("expected loop to continue into search, got %q", out)
	}
}

func TestRunAddThenList(t *testing.T) {
	h := newHarness(t, "2\nThe Matrix\ny\n\n1\n\n0\n")
	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(h.out.String(), "The Matrix (1999) - Rating: 8.7") {
		t.Fatalf("expected added movie to be listed, got %q", h.out.String())
	}
}

func TestRunStopsWhenContextCancelled(t *testing.T) {
	h := newHarness(t, "1\n\n", movies.Record{Title: "Heat", Year: 1995, Rating: 8.3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := h.app.Run(ctx); err == nil {
		t.Fatal("expected cancellation error")
	}
}
