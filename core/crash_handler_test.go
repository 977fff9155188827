package core

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func restoreCrashGlobals(t *testing.T) {
	t.Cleanup(func() {
		RegisterCrashScreen(nil)
		crashOut = os.Stderr
		exit = os.Exit
	})
}

type fakeScreen struct{ finis int }

func (f *fakeScreen) Fini() { f.finis++ }

func TestGoRecoversAndRestoresScreen(t *testing.T) {
	var out bytes.Buffer
	codes := make(chan int, 1)

	restoreCrashGlobals(t)
	crashOut = &out
	exit = func(code int) { codes <- code }

	screen := &fakeScreen{}
	RegisterCrashScreen(screen)

	Go(func() { panic("boom") })

	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if screen.finis != 1 {
		t.Errorf("Expected screen restored once, got %d", screen.finis)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash banner, got %q", out.String())
	}
}

func TestHandleCrashNil(t *testing.T) {
	restoreCrashGlobals(t)
	called := false
	exit = func(int) { called = true }
	HandleCrash(nil)
	if called {
		t.Error("Expected nil recover value to be ignored")
	}
}
