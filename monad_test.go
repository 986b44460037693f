// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coeff_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"code.hybscloud.com/coeff"
)

// counter yields each of effs in order and returns the sum of its inputs.
func counter(effs ...string) coeff.Coroutine[int, string, int] {
	return coeff.New(func(in int, yield func(string) int) int {
		sum := in
		for _, e := range effs {
			sum += yield(e)
		}
		return sum
	})
}

// union is a two-member effect union for embedding tests.
type union struct {
	left  string
	right int
	isInt bool
}

func fromString(s string) union { return union{left: s} }
func fromInt(n int) union       { return union{right: n, isInt: true} }

func TestMapResultAndEffects(t *testing.T) {
	base, _ := collect(counter("a", "b", "c"), 1, func(string) int { return 2 })
	m := coeff.Map(counter("a", "b", "c"), func(n int) string { return strconv.Itoa(n * 10) })
	effs, r := collect(m, 1, func(string) int { return 2 })
	if diff := cmp.Diff(base, effs); diff != "" {
		t.Fatalf("effects mismatch (-want +got):\n%s", diff)
	}
	if r != "70" {
		t.Fatalf("got %q, want 70", r)
	}
}

func TestMapAfterCompletionPanics(t *testing.T) {
	m := coeff.Map(coeff.Pure[int, string](1), func(n int) int { return n + 1 })
	if r, _ := m.Resume(0).Result(); r != 2 {
		t.Fatalf("got %d, want 2", r)
	}
	expectPanic(t, resumedPanic, func() { m.Resume(0) })
}

func TestBindConcatenatesEffects(t *testing.T) {
	first := coeff.New(func(in int, yield func(string) int) int {
		yield("x")
		yield("y")
		return in + 1
	})
	b := coeff.Bind(first, func(v int) coeff.Coroutine[int, int, string] {
		return coeff.New(func(in int, yield func(int) int) string {
			yield(v)
			yield(v * 2)
			return "v=" + strconv.Itoa(v)
		})
	}, fromString, fromInt)

	effs, r := collect(b, 5, func(union) int { return 0 })
	want := []union{fromString("x"), fromString("y"), fromInt(6), fromInt(12)}
	if diff := cmp.Diff(want, effs, cmp.AllowUnexported(union{})); diff != "" {
		t.Fatalf("effects mismatch (-want +got):\n%s", diff)
	}
	if r != "v=6" {
		t.Fatalf("got %q, want v=6", r)
	}
}

func TestBindHandsOverCompletingInput(t *testing.T) {
	var seen []int
	first := coeff.New(func(in int, yield func(string) int) int {
		seen = append(seen, in)
		return yield("only") + 100
	})
	b := coeff.Bind(first, func(v int) coeff.Coroutine[int, string, int] {
		return coeff.New(func(in int, yield func(string) int) int {
			seen = append(seen, in)
			return v + in
		})
	}, coeff.Identity[string](), coeff.Identity[string]())

	if s := b.Resume(1); s.Done() {
		t.Fatal("expected suspension")
	}
	r, ok := b.Resume(2).Result()
	if !ok {
		t.Fatal("expected completion")
	}
	if r != 104 {
		t.Fatalf("got %d, want 104", r)
	}
	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Fatalf("inputs mismatch (-want +got):\n%s", diff)
	}
}

func TestBindEquivalentToDirectRun(t *testing.T) {
	g := func(v int) coeff.Coroutine[int, string, int] {
		return counter("g"+strconv.Itoa(v), "h")
	}
	answer := func(string) int { return 3 }

	firstEffs, v := collect(counter("a", "b"), 0, answer)
	directEffs, direct := collect(g(v), 3, answer)

	b := coeff.Bind(counter("a", "b"), g, coeff.Identity[string](), coeff.Identity[string]())
	effs, r := collect(b, 0, answer)

	if diff := cmp.Diff(append(firstEffs, directEffs...), effs); diff != "" {
		t.Fatalf("effects mismatch (-want +got):\n%s", diff)
	}
	if r != direct {
		t.Fatalf("got %d, want %d", r, direct)
	}
}

func TestThenDiscardsFirstResult(t *testing.T) {
	th := coeff.Then(counter("a"), counter("b"), coeff.Identity[string](), coeff.Identity[string]())
	effs, r := collect(th, 10, func(string) int { return 1 })
	if diff := cmp.Diff([]string{"a", "b"}, effs); diff != "" {
		t.Fatalf("effects mismatch (-want +got):\n%s", diff)
	}
	// counter("b") starts from the input that completed counter("a").
	if r != 2 {
		t.Fatalf("got %d, want 2", r)
	}
}

func TestMapEffectRelabels(t *testing.T) {
	m := coeff.MapEffect(counter("a", "b"), fromString)
	effs, r := collect(m, 0, func(union) int { return 4 })
	want := []union{fromString("a"), fromString("b")}
	if diff := cmp.Diff(want, effs, cmp.AllowUnexported(union{})); diff != "" {
		t.Fatalf("effects mismatch (-want +got):\n%s", diff)
	}
	if r != 8 {
		t.Fatalf("got %d, want 8", r)
	}
}

func TestMapInputConvertsEveryResumption(t *testing.T) {
	var inputs []int
	c := coeff.New(func(in int, yield func(string) int) int {
		inputs = append(inputs, in)
		inputs = append(inputs, yield("a"))
		inputs = append(inputs, yield("b"))
		return len(inputs)
	})
	m := coeff.MapInput(c, func(s string) int { return len(s) })
	_, r := collect(m, "x", func(e string) string { return e + e + e })
	if diff := cmp.Diff([]int{1, 3, 3}, inputs); diff != "" {
		t.Fatalf("inputs mismatch (-want +got):\n%s", diff)
	}
	if r != 3 {
		t.Fatalf("got %d, want 3", r)
	}
}

func TestCombinatorDiscardReachesInner(t *testing.T) {
	cleaned := 0
	inner := func() coeff.Coroutine[int, string, int] {
		return coeff.New(func(_ int, yield func(string) int) int {
			defer func() { cleaned++ }()
			yield("pause")
			return 0
		})
	}

	cases := map[string]coeff.Coroutine[int, string, int]{
		"map":       coeff.Map(inner(), func(n int) int { return n }),
		"mapEffect": coeff.MapEffect(inner(), coeff.Identity[string]()),
		"mapInput":  coeff.MapInput(inner(), func(n int) int { return n }),
		"bindFirst": coeff.Bind(inner(), func(int) coeff.Coroutine[int, string, int] {
			return coeff.Pure[int, string](0)
		}, coeff.Identity[string](), coeff.Identity[string]()),
		"bindSecond": coeff.Then(coeff.Pure[int, string](0), inner(), coeff.Identity[string](), coeff.Identity[string]()),
	}
	for name, c := range cases {
		before := cleaned
		if s := c.Resume(0); s.Done() {
			t.Fatalf("%s: expected suspension", name)
		}
		c.Discard()
		if cleaned != before+1 {
			t.Fatalf("%s: inner computation was not discarded", name)
		}
	}
}

func TestEmbedCompose(t *testing.T) {
	toLen := coeff.Embed[string, int](func(s string) int { return len(s) })
	e := coeff.Compose(toLen, fromInt)
	if got := e("abcd"); got != fromInt(4) {
		t.Fatalf("got %+v, want %+v", got, fromInt(4))
	}
	if got := coeff.Identity[string]()("same"); got != "same" {
		t.Fatalf("got %q, want same", got)
	}
}

type note string

func (n note) Embed() union { return fromString(string(n)) }

func TestIntoUsesEffectEmbedding(t *testing.T) {
	c := coeff.New(func(_ int, yield func(note) int) int {
		yield("hello")
		return 0
	})
	effs, _ := collect(coeff.MapEffect(c, coeff.Into[note, union]()), 0, func(union) int { return 0 })
	if diff := cmp.Diff([]union{fromString("hello")}, effs, cmp.AllowUnexported(union{})); diff != "" {
		t.Fatalf("effects mismatch (-want +got):\n%s", diff)
	}
}
