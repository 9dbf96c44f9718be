package progress

import (
	"context"
	"testing"
)

func TestMulti(t *testing.T) {
	var order []string
	first := Func(func(ctx context.Context, e Event) { order = append(order, "first") })
	second := Func(func(ctx context.Context, e Event) { order = append(order, "second") })

	Multi{first, nil, second}.Report(context.Background(), Event{Done: 1, Total: 1, Fraction: 1})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected [first second], got %v", order)
	}
}

func TestBuiltinReporters(t *testing.T) {
	e := Event{BatchID: "b1", Backend: "openai", Done: 2, Total: 4, Fraction: 0.5}

	// Neither reporter may panic on a plain context.
	Log{}.Report(context.Background(), e)
	Metrics{}.Report(context.Background(), e)
	Nop.Report(context.Background(), e)
}
