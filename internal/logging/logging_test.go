package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	l := Setup("debug", "json")
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("formatter = %T, want json", l.Formatter)
	}
	if GetLogger() != l {
		t.Fatalf("Setup did not install the logger")
	}

	l = Setup("loud", "text")
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("unknown level should fall back to info, got %v", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("formatter = %T, want text", l.Formatter)
	}
}

func TestForTagsModule(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	SetLogger(nil)
	if GetLogger() != logrus.StandardLogger() {
		t.Fatalf("expected the standard logger before Setup")
	}
	if got := For("store").Data["module"]; got != "store" {
		t.Fatalf("module field = %v", got)
	}
}
