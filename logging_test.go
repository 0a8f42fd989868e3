package fallingsand

import "testing"

func TestNopLoggerDiscardsEverything(t *testing.T) {
	l := NewNopLogger()
	l.Debugf("x")
	l.Infof("x")
	l.Warnf("x")
	l.Errorf("x")
	if l.DebugEnabled() {
		t.Error("nop logger should never report debug enabled")
	}
	l.SetDebug(true) // must not panic; has no observable effect
}

func TestDefaultLoggerDebugToggle(t *testing.T) {
	l := NewDefaultLogger("test", false)
	if l.DebugEnabled() {
		t.Fatal("expected debug disabled initially")
	}
	l.SetDebug(true)
	if !l.DebugEnabled() {
		t.Fatal("expected debug enabled after SetDebug(true)")
	}
}
