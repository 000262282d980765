package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/compose"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func replay(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-plain"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

const composeScript = `
blocks:
  - key: a
    text: caf
selection:
  block: a
  offset: 3
steps:
  - op: compositionstart
  - op: preedit
    text: é
  - op: compositionend
    data: é
  - op: advance
    ms: 20
`

func TestRun_ResolvesAfterDelay(t *testing.T) {
	script := writeFile(t, "s.yaml", composeScript)
	out, errOut, code := replay(t, script)
	if code != 0 {
		t.Fatalf("code=%d, stderr=%q", code, errOut)
	}
	want := "resolved #1 at 20ms: \"café\" (insert-characters)\ncafé\nundo depth: 1\n"
	if out != want {
		t.Fatalf("out=%q, want %q", out, want)
	}
}

func TestRun_PendingCompositionIsReported(t *testing.T) {
	script := writeFile(t, "s.yaml", strings.TrimSuffix(composeScript, "  - op: advance\n    ms: 20\n"))
	out, _, code := replay(t, script)
	if code != 0 {
		t.Fatalf("code=%d", code)
	}
	// The surface still shows the uncommitted preedit.
	want := "composition still pending-resolve\ncafé\nundo depth: 0\n"
	if out != want {
		t.Fatalf("out=%q, want %q", out, want)
	}
}

func TestRun_NewlineCommit(t *testing.T) {
	script := writeFile(t, "s.yaml", `
blocks:
  - key: a
steps:
  - op: compositionstart
  - op: mutate
    block: a
    text: 안녕
  - op: compositionend
    data: "안녕\n"
`)
	out, _, code := replay(t, script)
	if code != 0 {
		t.Fatalf("code=%d", code)
	}
	want := "resolved #1 at 0s: \"안녕\\n\" (split-block)\n안녕\n\nundo depth: 2\n"
	if out != want {
		t.Fatalf("out=%q, want %q", out, want)
	}
}

func TestRun_ConfigDelay(t *testing.T) {
	cfg := writeFile(t, "c.toml", "resolve_delay_ms = 50\n")
	script := writeFile(t, "s.yaml", composeScript)
	out, _, code := replay(t, "-config", cfg, script)
	if code != 0 {
		t.Fatalf("code=%d", code)
	}
	if !strings.HasPrefix(out, "composition still pending-resolve\n") {
		t.Fatalf("out=%q, want composition pending at 20ms", out)
	}
}

func TestRun_Errors(t *testing.T) {
	unknownKey := writeFile(t, "c.toml", "colour = \"red\"\n")
	badTrigger := writeFile(t, "t.toml", "triggers = [\"ab\"]\n")
	badOp := writeFile(t, "op.yaml", "steps:\n  - op: fly\n")
	future := writeFile(t, "v.yaml", "version: 9.0.0\n")
	ok := writeFile(t, "ok.yaml", composeScript)

	cases := []struct {
		name string
		args []string
		code int
		err  string
	}{
		{name: "no script", args: nil, code: 2, err: "usage"},
		{name: "missing script", args: []string{filepath.Join(t.TempDir(), "nope.yaml")}, code: 1, err: "read script"},
		{name: "unknown config key", args: []string{"-config", unknownKey, ok}, code: 1, err: "unknown key"},
		{name: "bad trigger", args: []string{"-config", badTrigger, ok}, code: 1, err: "config:"},
		{name: "unknown op", args: []string{badOp}, code: 1, err: "step 1: unknown op"},
		{name: "incompatible version", args: []string{future}, code: 1, err: "recorded with engine 9.0.0"},
	}
	for _, tc := range cases {
		_, errOut, code := replay(t, tc.args...)
		if code != tc.code {
			t.Fatalf("%s: code=%d, want %d", tc.name, code, tc.code)
		}
		if !strings.Contains(errOut, tc.err) {
			t.Fatalf("%s: stderr=%q, want it to mention %q", tc.name, errOut, tc.err)
		}
	}
}

func TestRun_StrictAbortsOnMalformedMutation(t *testing.T) {
	cfg := writeFile(t, "c.toml", "strict = true\n")
	script := writeFile(t, "s.yaml", `
blocks:
  - key: a
    text: x
steps:
  - op: compositionstart
  - op: mutate
    block: zz
    text: junk
  - op: compositionend
    data: junk
  - op: advance
    ms: 20
`)
	out, errOut, code := replay(t, "-config", cfg, script)
	if code != 1 {
		t.Fatalf("code=%d, want 1", code)
	}
	if !strings.Contains(errOut, "step aborted") || !strings.Contains(errOut, "ApplyMutations") {
		t.Fatalf("stderr=%q, want the aborted mutation", errOut)
	}
	if strings.Contains(out, "undo depth") {
		t.Fatalf("out=%q, want no final document", out)
	}

	// Without strict the mutation is skipped.
	out, _, code = replay(t, script)
	if code != 0 || !strings.HasSuffix(out, "x\nundo depth: 0\n") {
		t.Fatalf("lenient out=%q code=%d", out, code)
	}
}

func TestRun_Version(t *testing.T) {
	out, _, code := replay(t, "-version")
	if code != 0 || out != compose.Banner("compose-replay")+"\n" {
		t.Fatalf("out=%q code=%d", out, code)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Width != 80 || cfg.ResolveDelayMs != 20 || len(cfg.Triggers) != 2 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if d := (Config{}).resolveDelay(); d >= 0 {
		t.Fatalf("zero delay=%v, want next turn", d)
	}
}
