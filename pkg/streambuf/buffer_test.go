package streambuf

import (
	"errors"
	"strings"
	"testing"
)

func collect(b *Buffer) (string, error) {
	var sb strings.Builder
	for text, err := range b.Stream() {
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func TestDirectWritesPassThrough(t *testing.T) {
	b := New(NewStackRegistry())
	go func() {
		b.Add("hello ")
		b.Add("world")
		b.Yield()
		b.Complete()
	}()
	got, err := collect(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q, want %q", got, "hello world")
	}
}

func TestFailSurfacesOnNextPull(t *testing.T) {
	sentinel := errors.New("boom")
	b := New(NewStackRegistry())
	go func() {
		b.Add("partial")
		b.Yield()
		b.Fail(sentinel)
	}()
	_, err := collect(b)
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want %v", err, sentinel)
	}
}

func TestStackPushOrderIsPreserved(t *testing.T) {
	b := New(NewStackRegistry())
	id := "head"
	go func() {
		b.BeginRedirect(id)
		b.Add("Head1")
		b.Yield()
		b.EndRedirect()

		b.BeginRedirect(id)
		b.Add("Head2")
		b.Yield()
		b.EndRedirect()

		b.Add("<div>")
		b.Yield()
		if err := b.EmitRedirectedContent(id); err != nil {
			t.Errorf("EmitRedirectedContent: %v", err)
		}
		b.Add("</div>")
		b.Yield()
		b.Complete()
	}()
	got, err := collect(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<div>Head1Head2</div>" {
		t.Fatalf("got %q", got)
	}
}

func TestSecondStackOutForSameIdentityFails(t *testing.T) {
	b := New(NewStackRegistry())
	id := "head"
	go func() {
		_ = b.EmitRedirectedContent(id)
		if err := b.EmitRedirectedContent(id); err == nil {
			t.Error("expected second EmitRedirectedContent to fail")
		} else if !errors.Is(err, ErrStackAlreadyOut) {
			t.Errorf("err = %v, want ErrStackAlreadyOut", err)
		}
		b.Complete()
	}()
	if _, err := collect(b); err != nil {
		t.Fatalf("unexpected stream error: %v", err)
	}
}

func TestSecondTopLevelStackOutIsDeferredUntilComplete(t *testing.T) {
	b := New(NewStackRegistry())
	first, second := "first", "second"
	go func() {
		b.BeginRedirect(first)
		b.Add("F")
		b.Yield()
		b.EndRedirect()

		b.BeginRedirect(second)
		b.Add("S")
		b.Yield()
		b.EndRedirect()

		b.Add("<a>")
		b.Yield()
		_ = b.EmitRedirectedContent(first) // becomes the first-stack sink, streams live

		b.Add("<b>")
		b.Yield()
		_ = b.EmitRedirectedContent(second) // later top-level out: deferred to Complete

		b.Add("<c>")
		b.Yield()
		b.Complete()
	}()
	got, err := collect(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<a>F<b>S<c>" {
		t.Fatalf("got %q, want %q", got, "<a>F<b>S<c>")
	}
}
