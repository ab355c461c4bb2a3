package engine

import (
	"errors"
	"testing"
)

func TestSubmit_NilJob(t *testing.T) {
	c := New(1)
	defer c.Close()

	if err := c.Submit(nil); !errors.Is(err, ErrNilJob) {
		t.Fatalf("Submit(nil) = %v, want ErrNilJob", err)
	}
}

func TestSubmitWithDependencies_NilJob(t *testing.T) {
	c := New(1)
	defer c.Close()

	if err := c.SubmitWithDependencies(nil, nil); !errors.Is(err, ErrNilJob) {
		t.Fatalf("SubmitWithDependencies(nil, nil) = %v, want ErrNilJob", err)
	}
}

func TestSubmit_AfterCloseReturnsErrShutdown(t *testing.T) {
	c := New(1)
	c.Resume()
	c.Close()

	if err := c.Submit(NewJob("late", func() {})); !errors.Is(err, ErrShutdown) {
		t.Fatalf("Submit after Close = %v, want ErrShutdown", err)
	}
}

func TestSubmitWithDependencies_AfterCloseReturnsErrShutdown(t *testing.T) {
	c := New(1)
	c.Resume()
	a := NewJob("a", func() {})
	if err := c.Submit(a); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	c.Wait(a)
	c.Close()

	if err := c.SubmitWithDependencies(NewJob("late", func() {}), []*Job{a}); !errors.Is(err, ErrShutdown) {
		t.Fatalf("SubmitWithDependencies after Close = %v, want ErrShutdown", err)
	}
}
