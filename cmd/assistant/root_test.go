package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"desktop-assistant/internal/intent"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"run", "classify", "transcript"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("expected %q subcommand, got %v (%v)", name, cmd, err)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("expected --config flag")
	}
}

func TestPrintDecision(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	printDecision(cmd, intent.Parse("open chrome, general tell me a joke"))
	want := "1. open            chrome\n2. general         tell me a joke\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%q\nwant\n%q", buf.String(), want)
	}

	buf.Reset()
	printDecision(cmd, nil)
	if buf.String() != "(no actionable intent)\n" {
		t.Errorf("unexpected empty output: %q", buf.String())
	}
}
