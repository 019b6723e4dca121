package rx

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

// never is a producer that only stops when its context is cancelled.
func never[T any]() Observable[T] {
	return Create(func(ctx Context, _ Observer[T]) {
		<-ctx.Done()
	})
}

func TestSlice(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name       string
		src        Observable[int]
		wantValues []int
		wantErr    error
	}{
		{name: "collects all values", src: Just(1, 2, 3), wantValues: []int{1, 2, 3}},
		{name: "empty stream", src: Empty[int](), wantValues: []int{}},
		{name: "error", src: Fail[int](boom), wantErr: boom},
		{
			name: "error after values discards them",
			src: Create(func(_ Context, obs Observer[int]) {
				obs.OnNext(1)
				obs.OnError(boom)
			}),
			wantErr: boom,
		},
		{
			name: "emission after completion is ignored",
			src: Create(func(_ Context, obs Observer[int]) {
				obs.OnNext(1)
				obs.OnCompleted()
				obs.OnNext(2)
				obs.OnCompleted()
			}),
			wantValues: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Slice(context.Background(), tt.src)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Slice() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !reflect.DeepEqual(values, tt.wantValues) {
				t.Errorf("Slice() = %v, want %v", values, tt.wantValues)
			}
		})
	}
}

func TestSlice_AsyncProducer(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 3; i++ {
			ch <- i
		}
	}()

	values, err := Slice(context.Background(), FromChannel(ch))
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}
	if !reflect.DeepEqual(values, []int{1, 2, 3}) {
		t.Errorf("Slice() = %v", values)
	}
}

func TestSlice_Cancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Slice(ctx, never[int]())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Slice() error = %v, want deadline exceeded", err)
	}
}

func TestFirst(t *testing.T) {
	t.Run("returns first value", func(t *testing.T) {
		v, err := First(context.Background(), Just(42, 2, 3))
		if err != nil || v != 42 {
			t.Errorf("First() = %v, %v; want 42, nil", v, err)
		}
	})

	t.Run("empty stream", func(t *testing.T) {
		_, err := First(context.Background(), Empty[int]())
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("First() error = %v, want ErrEmpty", err)
		}
	})

	t.Run("error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := First(context.Background(), Fail[int](boom))
		if !errors.Is(err, boom) {
			t.Errorf("First() error = %v, want boom", err)
		}
	})

	t.Run("cancels an endless producer", func(t *testing.T) {
		stopped := make(chan struct{})
		src := Create(func(ctx Context, obs Observer[int]) {
			defer close(stopped)
			obs.OnNext(7)
			<-ctx.Done()
		})

		v, err := First(context.Background(), src)
		if err != nil || v != 7 {
			t.Fatalf("First() = %v, %v; want 7, nil", v, err)
		}
		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Error("producer was not cancelled after First returned")
		}
	})
}

func TestRun(t *testing.T) {
	seen := 0
	ctx := WithHooks(context.Background(), Hooks[int]{OnValue: func(int) { seen++ }})
	if err := Run(ctx, Just(1, 2, 3)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if seen != 3 {
		t.Errorf("hook saw %d values, want 3", seen)
	}

	boom := errors.New("boom")
	if err := Run(context.Background(), Fail[int](boom)); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want boom", err)
	}
}

func TestToSlice_Composition(t *testing.T) {
	double := func(_ Context, downstream Observer[int]) Observer[int] {
		return ObserverFuncs[int]{
			Next:      func(v int) { downstream.OnNext(v * 2) },
			Error:     downstream.OnError,
			Completed: downstream.OnCompleted,
		}
	}

	var got [][]int
	Lift(Just(1, 2, 3), Through(Operator[int, int](double), ToSlice[int]())).
		Subscribe(context.Background(), ObserverFuncs[[]int]{
			Next: func(v []int) { got = append(got, v) },
		})

	if !reflect.DeepEqual(got, [][]int{{2, 4, 6}}) {
		t.Errorf("got %v, want [[2 4 6]]", got)
	}
}

func TestTerminals_RecoverSubscriptionPanics(t *testing.T) {
	panicking := Create(func(Context, Observer[int]) { panic("producer failed") })

	// A downstream terminal call that panics inside the chain.
	failOnComplete := func(_ Context, downstream Observer[int]) Observer[int] {
		return ObserverFuncs[int]{
			Next:      downstream.OnNext,
			Error:     downstream.OnError,
			Completed: func() { panic(errors.New("completion rejected")) },
		}
	}

	tests := []struct {
		name string
		run  func() error
	}{
		{name: "Slice", run: func() error { _, err := Slice(context.Background(), panicking); return err }},
		{name: "First", run: func() error { _, err := First(context.Background(), panicking); return err }},
		{name: "Run", run: func() error { return Run(context.Background(), panicking) }},
		{
			name: "Slice with panicking operator",
			run: func() error {
				_, err := Slice(context.Background(), Lift(Just(1), Operator[int, int](failOnComplete)))
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			var pe ErrPanic
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v (%T), want ErrPanic", err, err)
			}
		})
	}
}

func TestFirst_PanicAfterValueKeepsValue(t *testing.T) {
	src := Create(func(_ Context, obs Observer[int]) {
		obs.OnNext(3)
		panic("late failure")
	})

	v, err := First(context.Background(), src)
	if err != nil || v != 3 {
		t.Errorf("First() = %v, %v; want 3, nil", v, err)
	}
}

func TestRootReexports(t *testing.T) {
	ctx := WithConfig(context.Background(), &AggregateConfig{Capacity: 4})

	var got []int
	Lift(Just(1, 2), ToSliceSync[int](WithCapacity(2))).Subscribe(ctx, ObserverFuncs[[]int]{
		Next: func(v []int) { got = v },
	})
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("ToSliceSync via rx = %v, want [1 2]", got)
	}
}
