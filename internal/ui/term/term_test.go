package term

import "testing"

func TestSetUIOptionsParsesPairs(t *testing.T) {
	b := &Backend{width: 80, height: 24}
	b.SetUIOptions(`status=top,assistant=cat,title\,full=yes,bare`)

	cases := map[string]string{
		"status":     "top",
		"assistant":  "cat",
		"title,full": "yes",
		"bare":       "",
	}
	for name, want := range cases {
		if got := b.UIOption(name); got != want {
			t.Fatalf("option %q = %q, want %q", name, got, want)
		}
	}
}

func TestSetUIOptionsReplacesPreviousSet(t *testing.T) {
	b := &Backend{width: 80, height: 24}
	b.SetUIOptions("status=top")
	b.SetUIOptions("assistant=none")

	if got := b.UIOption("status"); got != "" {
		t.Fatalf("stale option survived: %q", got)
	}
	if got := b.UIOption("assistant"); got != "none" {
		t.Fatalf("assistant = %q", got)
	}
}
