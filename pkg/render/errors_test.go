package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/render"
)

func TestFormatErrors(t *testing.T) {
	got := render.FormatErrors(render.DefaultErrorPrefix, []string{
		"firstName must have at least 5 characters.",
		"  ",
		"lastName is a required field.",
	})
	want := []string{
		"Error: firstName must have at least 5 characters.",
		"Error: lastName is a required field.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("formatted errors mismatch (-want +got):\n%s", diff)
	}

	if got := render.FormatErrors("! ", nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestSanitizeDisplay(t *testing.T) {
	cases := map[string]string{
		"n/a":           "n/a",
		"  <b>Hi</b>  ": "Hi",
		"Tom & Jerry":   "Tom &amp; Jerry",
		"":              "",
		"<i></i>":       "",
	}
	for input, want := range cases {
		if got := render.SanitizeDisplay(input); got != want {
			t.Errorf("SanitizeDisplay(%q) = %q, want %q", input, got, want)
		}
	}
}
