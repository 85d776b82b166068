package vtree

import "testing"

func TestIfElseAndWhen(t *testing.T) {
	if got := If(false, Text("a")); !got.IsNil() {
		t.Fatalf("If(false) = %v, want Nil", got)
	}
	if got := IfElse(false, Text("a"), Text("b")); got.Value != "b" {
		t.Fatalf("IfElse(false) = %v, want b", got.Value)
	}
	ran := false
	When(true, func() Node { ran = true; return Text("x") })
	if !ran {
		t.Fatal("When(true) did not invoke fn")
	}
	ranFalse := false
	When(false, func() Node { ranFalse = true; return Text("x") })
	if ranFalse {
		t.Fatal("When(false) invoked fn")
	}
}

func TestSwitchMatchesOrDefault(t *testing.T) {
	got := Switch("b",
		CaseOf("a", Text("A")),
		CaseOf("b", Text("B")),
		DefaultCase[string](Text("D")))
	if got.Value != "B" {
		t.Fatalf("Switch matched = %v, want B", got.Value)
	}

	got = Switch("z",
		CaseOf("a", Text("A")),
		DefaultCase[string](Text("D")))
	if got.Value != "D" {
		t.Fatalf("Switch default = %v, want D", got.Value)
	}
}

func TestRangeSkipsNilResults(t *testing.T) {
	items := []int{1, 2, 3, 4}
	got := Range(items, func(item, _ int) Node {
		if item%2 == 0 {
			return Nil
		}
		return Textf("%d", item)
	})
	if len(got.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(got.Items))
	}
}

func TestRepeatBuildsNNodes(t *testing.T) {
	got := Repeat(3, func(i int) Node { return Textf("%d", i) })
	if len(got.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(got.Items))
	}
}
