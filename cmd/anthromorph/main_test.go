package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// testInvoke runs a command's RunE against the embedded taxonomy with
// output captured.
func testInvoke(t *testing.T, run func(*cobra.Command, []string) error, args []string) string {
	t.Helper()
	t.Setenv("ANTHROMORPH_TAXONOMY_SOURCE", "")
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := run(cmd, args); err != nil {
		t.Fatalf("command failed: %v", err)
	}
	return out.String()
}

func TestCheckReportsEmbeddedTaxonomy(t *testing.T) {
	out := testInvoke(t, checkCmd.RunE, nil)
	if !strings.Contains(out, "embedded dataset") {
		t.Fatalf("check output missing source:\n%s", out)
	}
	if !strings.Contains(out, "morphotypes: 3") {
		t.Fatalf("check output missing morphotype count:\n%s", out)
	}
	if !strings.Contains(out, "taxonomy ok") {
		t.Fatalf("check output missing verdict:\n%s", out)
	}
}

func TestShowEmitsRawMarkdown(t *testing.T) {
	showRaw = true
	defer func() { showRaw = false }()
	out := testInvoke(t, showCmd.RunE, []string{"morphotypes"})
	if !strings.HasPrefix(out, "# Anthrobot Morphotypes") {
		t.Fatalf("show output starts %q", out[:40])
	}
}

func TestShowRejectsUnknownDocument(t *testing.T) {
	t.Setenv("ANTHROMORPH_TAXONOMY_SOURCE", "")
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	if err := showCmd.RunE(cmd, []string{"horoscopes"}); err == nil {
		t.Fatalf("unknown document must fail")
	}
}

func TestToolsListsAllFifteen(t *testing.T) {
	out := testInvoke(t, toolsCmd.RunE, nil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 15 {
		t.Fatalf("tools = %d lines, want 15:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "list_morphotypes") {
		t.Fatalf("first tool = %q", lines[0])
	}
}
