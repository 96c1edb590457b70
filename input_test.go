package signal

import "testing"

func TestOnClickHandlers(t *testing.T) {
	s := newTestScene(t, testConfig())
	s.Advance(0)

	var got []ClickContext
	h := s.OnClick(func(ctx ClickContext) { got = append(got, ctx) })

	s.deliverClick(10, 20, true)
	if len(got) != 1 {
		t.Fatalf("handler calls = %d, want 1", len(got))
	}
	if got[0].X != 10 || got[0].Y != 20 || !got[0].Touch || got[0].Advanced {
		t.Errorf("ctx = %+v", got[0])
	}

	s.deliverClick(-5, 20, false)
	s.deliverClick(10, 301, false)
	if len(got) != 1 {
		t.Errorf("clicks outside the canvas reached the handler")
	}

	h.Remove()
	s.deliverClick(10, 20, false)
	if len(got) != 1 {
		t.Errorf("removed handler still called")
	}
}

func TestDeliverClickAdvancesWhenClickable(t *testing.T) {
	s := newTestScene(t, testConfig())
	now := 0.0
	s.Advance(now)
	advanceUntil(t, s, &now, s.Clickable)

	var advanced bool
	s.OnClick(func(ctx ClickContext) { advanced = ctx.Advanced })
	s.deliverClick(200, 150, false)
	if !advanced || s.State() != StateCircle {
		t.Errorf("advanced=%v state=%s, want true circle", advanced, s.State())
	}
}

func TestCallbackHandleZeroValue(t *testing.T) {
	var h CallbackHandle
	h.Remove() // must not panic
}

func TestOnClickHandlerRemovesItself(t *testing.T) {
	s := newTestScene(t, testConfig())
	s.Advance(0)

	var calls []string
	var first CallbackHandle
	first = s.OnClick(func(ClickContext) {
		calls = append(calls, "first")
		first.Remove()
	})
	s.OnClick(func(ClickContext) { calls = append(calls, "second") })
	s.OnClick(func(ClickContext) { calls = append(calls, "third") })

	s.deliverClick(10, 20, false)
	if len(calls) != 3 || calls[1] != "second" || calls[2] != "third" {
		t.Fatalf("calls = %v, want [first second third]", calls)
	}
	s.deliverClick(10, 20, false)
	if len(calls) != 5 || calls[3] != "second" {
		t.Errorf("calls after removal = %v", calls)
	}
}
