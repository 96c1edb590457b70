package signal

import "testing"

func TestInjectClickConsumedOnePerAdvance(t *testing.T) {
	s := newTestScene(t, testConfig())
	s.InjectClick(10, 10)
	s.InjectClick(20, 20)
	if len(s.injectQueue) != 2 {
		t.Fatalf("queue = %d, want 2", len(s.injectQueue))
	}
	s.Advance(0)
	if len(s.injectQueue) != 1 {
		t.Errorf("queue after one Advance = %d, want 1", len(s.injectQueue))
	}
	s.Advance(10)
	if len(s.injectQueue) != 0 {
		t.Errorf("queue after two Advances = %d, want 0", len(s.injectQueue))
	}
}

func TestInjectClickRespectsGate(t *testing.T) {
	s := newTestScene(t, testConfig())
	now := 0.0
	s.Advance(now)
	s.InjectClick(100, 100)
	now += 10
	s.Advance(now)
	if s.State() != StateCircle {
		t.Fatalf("injected click advanced a gated scene to %s", s.State())
	}

	advanceUntil(t, s, &now, s.Clickable)
	s.InjectClick(100, 100)
	now += 10
	s.Advance(now)
	if s.State() != StateCircle || s.Clickable() {
		t.Errorf("after injected click: %s clickable=%v, want circle false", s.State(), s.Clickable())
	}
}

func TestInjectResize(t *testing.T) {
	s := newTestScene(t, testConfig())
	s.InjectResize(320, 200)
	s.Advance(0)
	if w, h := s.Size(); w != 320 || h != 200 {
		t.Errorf("Size = %dx%d, want 320x200", w, h)
	}

	s.InjectResize(0, 0)
	s.Advance(10)
	if w, h := s.Size(); w != 320 || h != 200 {
		t.Errorf("invalid injected resize changed Size to %dx%d", w, h)
	}
}

func TestProcessInjectedEmpty(t *testing.T) {
	s := newTestScene(t, testConfig())
	if s.processInjected() {
		t.Error("processInjected reported an event on an empty queue")
	}
}
