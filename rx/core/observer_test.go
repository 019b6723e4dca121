package core

import (
	"errors"
	"reflect"
	"testing"
)

// callLog records Observer calls as strings.
type callLog struct {
	calls []string
}

func (l *callLog) observer() ObserverFuncs[int] {
	return ObserverFuncs[int]{
		Next:      func(v int) { l.calls = append(l.calls, "next") },
		Error:     func(err error) { l.calls = append(l.calls, "error:"+err.Error()) },
		Completed: func() { l.calls = append(l.calls, "completed") },
	}
}

func TestObserverFuncs_NilFieldsAreNoops(t *testing.T) {
	var obs Observer[int] = ObserverFuncs[int]{}
	obs.OnNext(1)
	obs.OnError(errors.New("ignored"))
	obs.OnCompleted()
}

func TestSafe(t *testing.T) {
	tests := []struct {
		name string
		feed func(Observer[int])
		want []string
	}{
		{
			name: "passes well-behaved calls",
			feed: func(o Observer[int]) {
				o.OnNext(1)
				o.OnNext(2)
				o.OnCompleted()
			},
			want: []string{"next", "next", "completed"},
		},
		{
			name: "drops calls after completion",
			feed: func(o Observer[int]) {
				o.OnCompleted()
				o.OnNext(1)
				o.OnError(errors.New("late"))
				o.OnCompleted()
			},
			want: []string{"completed"},
		},
		{
			name: "drops calls after error",
			feed: func(o Observer[int]) {
				o.OnNext(1)
				o.OnError(errors.New("boom"))
				o.OnNext(2)
				o.OnCompleted()
			},
			want: []string{"next", "error:boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log callLog
			tt.feed(Safe[int](log.observer()))
			if !reflect.DeepEqual(log.calls, tt.want) {
				t.Errorf("calls = %v, want %v", log.calls, tt.want)
			}
		})
	}
}

func TestSafe_DoesNotDoubleWrap(t *testing.T) {
	var log callLog
	once := Safe[int](log.observer())
	if twice := Safe(once); twice != once {
		t.Error("Safe(Safe(obs)) should return the same wrapper")
	}
}
