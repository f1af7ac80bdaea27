package hooks

import "testing"

func TestRunFiresRegisteredHooksInOrder(t *testing.T) {
	r := NewRunner()
	var fired []string
	r.Add("WinDisplay", func(payload string) { fired = append(fired, "a:"+payload) })
	r.Add("WinDisplay", func(payload string) { fired = append(fired, "b:"+payload) })

	r.Run("WinDisplay", "buf")

	if len(fired) != 2 || fired[0] != "a:buf" || fired[1] != "b:buf" {
		t.Fatalf("fired = %v", fired)
	}
}

func TestDisabledRunnerSkipsHooks(t *testing.T) {
	r := NewRunner()
	fired := false
	r.Add("FocusIn", func(string) { fired = true })

	r.SetDisabled(true)
	r.Run("FocusIn", "client")
	if fired {
		t.Fatal("disabled runner still fired hooks")
	}
	if !r.Disabled() {
		t.Fatal("Disabled not reported")
	}

	r.SetDisabled(false)
	r.Run("FocusIn", "client")
	if !fired {
		t.Fatal("re-enabled runner did not fire hooks")
	}
}

func TestPanickingHookIsContained(t *testing.T) {
	r := NewRunner()
	var after bool
	r.Add("RuntimeError", func(string) { panic("boom") })
	r.Add("RuntimeError", func(string) { after = true })

	r.Run("RuntimeError", "x")

	if !after {
		t.Fatal("panic in one hook stopped the rest")
	}
}
