package nbe

import "testing"

func TestEnvShadowing(t *testing.T) {
	m := NewMachine()
	a, b := m.Placeholder("a"), m.Placeholder("b")

	var env *Env
	if _, ok := env.Lookup("x"); ok {
		t.Fatal("empty environment should bind nothing")
	}

	outer := env.Bind("x", a)
	inner := outer.Bind("y", b).Bind("x", b)

	if got, _ := outer.Lookup("x"); got != Term(a) {
		t.Errorf("outer x should stay bound to a")
	}
	if got, _ := inner.Lookup("x"); got != Term(b) {
		t.Errorf("inner x should shadow outer x")
	}
	names := inner.Names()
	if len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Errorf("expected [x y], got %v", names)
	}
}

func TestFreshSequence(t *testing.T) {
	f := FirstFresh
	want := []string{"x", "xx", "xxx", "xxxx"}
	for i, w := range want {
		if f.String() != w {
			t.Errorf("step %d: expected %s, got %s", i, w, f)
		}
		f = f.Next()
	}
}
