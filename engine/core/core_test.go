package core

import "testing"

func TestMetricsFrameTime(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(0.010)
	}
	if ft := m.FrameTime(); ft < 9.999 || ft > 10.001 {
		t.Errorf("FrameTime = %v, want 10", ft)
	}
	// second window must not accumulate on top of the first
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(0.010)
	}
	if ft := m.FrameTime(); ft < 9.999 || ft > 10.001 {
		t.Errorf("FrameTime after two windows = %v, want 10", ft)
	}
}

func TestMetricsFPS(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 120; i++ {
		m.Update(1.0 / 100.0)
	}
	if fps := m.FPS(); fps < 99 || fps > 102 {
		t.Errorf("FPS = %v, want about 100", fps)
	}
}

func TestIdentifiersRecycle(t *testing.T) {
	ids := NewIdentifiers()
	a := ids.Acquire("a")
	b := ids.Acquire("b")
	if a != 0 || b != 1 {
		t.Fatalf("got ids %d, %d", a, b)
	}
	if err := ids.Release(a); err != nil {
		t.Fatal(err)
	}
	if c := ids.Acquire("c"); c != 0 {
		t.Errorf("released slot not reused, got %d", c)
	}
	if ids.Owner(0) != "c" {
		t.Errorf("Owner(0) = %v", ids.Owner(0))
	}
	if err := ids.Release(5); err == nil {
		t.Error("expected out of range error")
	}
}

func TestEventFire(t *testing.T) {
	EventSystemInitialize()
	defer EventSystemShutdown()

	var calls []string
	EventRegister(EVENT_CODE_SHADER_SAVED, func(ctx EventContext) bool {
		calls = append(calls, "first:"+ctx.Data.(*FileEvent).Path)
		return false
	})
	EventRegister(EVENT_CODE_SHADER_SAVED, func(ctx EventContext) bool {
		calls = append(calls, "second")
		return true
	})
	EventRegister(EVENT_CODE_SHADER_SAVED, func(ctx EventContext) bool {
		calls = append(calls, "third")
		return true
	})

	handled := EventFire(EventContext{Type: EVENT_CODE_SHADER_SAVED, Data: &FileEvent{Path: "a.frag"}})
	if !handled {
		t.Error("expected event to be handled")
	}
	if len(calls) != 2 || calls[0] != "first:a.frag" || calls[1] != "second" {
		t.Errorf("unexpected dispatch order %v", calls)
	}
	if EventFire(EventContext{Type: EVENT_CODE_RESIZED}) {
		t.Error("event with no listeners reported handled")
	}
}

func TestInputKeyPressed(t *testing.T) {
	if err := InputInitialize(); err != nil {
		t.Fatal(err)
	}
	defer InputShutdown()

	InputProcessKey(KEY_LEFT_CONTROL, true)
	InputProcessKey(KEY_S, true)
	if !InputIsCtrlDown() || !InputIsKeyPressed(KEY_S) {
		t.Fatal("ctrl+s not reported on the press frame")
	}
	InputUpdate()
	if InputIsKeyPressed(KEY_S) {
		t.Error("key still reported pressed on the following frame")
	}
	if !InputIsKeyDown(KEY_S) {
		t.Error("held key should remain down")
	}
}
