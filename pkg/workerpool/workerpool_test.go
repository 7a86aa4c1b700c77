package workerpool

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
)

func TestMap_PreservesOrder(t *testing.T) {
	t.Parallel()

	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	got, err := Map(context.Background(), 8, items, func(_ context.Context, v int) (string, error) {
		return strconv.Itoa(v * 2), nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if len(got) != len(items) {
		t.Fatalf("len = %d, want %d", len(got), len(items))
	}
	for i, s := range got {
		if want := strconv.Itoa(i * 2); s != want {
			t.Errorf("result[%d] = %s, want %s", i, s, want)
		}
	}
}

func TestMap_FirstErrorWins(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var calls atomic.Int64
	items := make([]int, 1000)
	_, err := Map(context.Background(), 4, items, func(_ context.Context, _ int) (int, error) {
		if calls.Add(1) == 10 {
			return 0, boom
		}
		return 0, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Map() error = %v, want boom", err)
	}
	if calls.Load() == 1000 {
		t.Error("work did not stop after error")
	}
}

func TestMap_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Map(ctx, 2, []int{1, 2, 3}, func(ctx context.Context, _ int) (int, error) {
		return 0, ctx.Err()
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Map() error = %v, want context.Canceled", err)
	}
}

func TestMap_EmptyInput(t *testing.T) {
	t.Parallel()

	got, err := Map(context.Background(), 4, nil, func(_ context.Context, v int) (int, error) {
		return v, nil
	})
	if err != nil || got != nil {
		t.Errorf("Map() = %v, %v; want nil, nil", got, err)
	}
}

func TestMap_WorkerCountClamp(t *testing.T) {
	t.Parallel()

	got, err := Map(context.Background(), 0, []int{5}, func(_ context.Context, v int) (int, error) {
		return v + 1, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if got[0] != 6 {
		t.Errorf("result = %v", got)
	}
}
