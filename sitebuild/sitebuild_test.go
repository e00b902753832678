package sitebuild

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type call struct {
	env  []string
	name string
	args []string
}

// fakeRunner records calls and answers "go env GOROOT" with goroot.
type fakeRunner struct {
	goroot string
	fail   string // command line prefix that fails
	calls  []call
}

func (f *fakeRunner) Run(_ context.Context, env []string, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{env: env, name: name, args: args})
	line := strings.Join(append([]string{name}, args...), " ")
	if f.fail != "" && strings.HasPrefix(line, f.fail) {
		return nil, errors.New("exit status 1")
	}
	if line == "go env GOROOT" {
		return []byte(f.goroot + "\n"), nil
	}
	return nil, nil
}

func (f *fakeRunner) commands() []string {
	var out []string
	for _, c := range f.calls {
		out = append(out, c.name+" "+c.args[0])
	}
	return out
}

func fakeGoroot(t *testing.T, rel string) string {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("// loader"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func testConfig(t *testing.T) Config {
	t.Helper()
	site := filepath.Join(t.TempDir(), "site")
	return Config{
		SiteDir: site,
		Mkdocs:  "mkdocs.yml",
		Entry:   ".",
		Out:     filepath.Join(site, "assets", "wasm", "main.wasm"),
	}
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("sitebuild", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.SiteDir != "site" || cfg.Mkdocs != "mkdocs.yml" || cfg.Entry != "." {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if cfg.Out != "site/assets/wasm/main.wasm" {
		t.Errorf("Expected default out, got %q", cfg.Out)
	}
	if cfg.SkipDocs || cfg.Serve != "" {
		t.Errorf("Expected docs on and no server, got %+v", cfg)
	}
}

func TestParseConfigFlagsBeatEnv(t *testing.T) {
	t.Setenv("SITEBUILD_SITE_DIR", "public")
	t.Setenv("SITEBUILD_SKIP_DOCS", "true")

	fs := flag.NewFlagSet("sitebuild", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-site-dir", "dist", "-out", "dist/app.wasm"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.SiteDir != "dist" {
		t.Errorf("Expected site dir dist, got %q", cfg.SiteDir)
	}
	if !cfg.SkipDocs {
		t.Error("Expected skip-docs from env")
	}
	if cfg.Out != "dist/app.wasm" {
		t.Errorf("Expected out dist/app.wasm, got %q", cfg.Out)
	}
}

func TestParseConfigRejectsEmptySiteDir(t *testing.T) {
	fs := flag.NewFlagSet("sitebuild", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-site-dir", ""}); err == nil {
		t.Error("Expected error for empty site dir")
	}
}

func TestClear(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nested", "index.html"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Clear(dir); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Expected %s removed, got %v", dir, err)
	}
	if err := Clear(dir); err != nil {
		t.Errorf("Expected clearing a missing dir to succeed, got %v", err)
	}
}

func TestClearRefusesSourceTree(t *testing.T) {
	module := t.TempDir()
	if err := os.WriteFile(filepath.Join(module, "go.mod"), []byte("module example.test\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		dir  string
	}{
		{name: "empty", dir: ""},
		{name: "working dir", dir: "."},
		{name: "parent of working dir", dir: ".."},
		{name: "filesystem root", dir: string(filepath.Separator)},
		{name: "module root", dir: module},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Clear(tt.dir)
			if !errors.Is(err, ErrUnsafeSiteDir) {
				t.Errorf("Expected ErrUnsafeSiteDir, got %v", err)
			}
		})
	}

	if _, err := os.Stat("sitebuild_test.go"); err != nil {
		t.Errorf("Expected working dir untouched, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(module, "go.mod")); err != nil {
		t.Errorf("Expected module root untouched, got %v", err)
	}
}

func TestBuildRunsSteps(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(cfg.SiteDir, 0o755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(cfg.SiteDir, "stale.html")
	if err := os.WriteFile(stale, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	runner := &fakeRunner{goroot: fakeGoroot(t, filepath.Join("lib", "wasm", "wasm_exec.js"))}

	if err := Build(context.Background(), cfg, runner); err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []string{"mkdocs build", "go build", "go env"}
	got := runner.commands()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected steps %v, got %v", want, got)
	}
	if env := runner.calls[1].env; strings.Join(env, " ") != "GOOS=js GOARCH=wasm" {
		t.Errorf("Expected wasm target env, got %v", env)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("Expected stale site files cleared")
	}
	loader := filepath.Join(filepath.Dir(cfg.Out), "wasm_exec.js")
	if data, err := os.ReadFile(loader); err != nil || string(data) != "// loader" {
		t.Errorf("Expected wasm_exec.js copied, got %q, %v", data, err)
	}
}

func TestBuildSkipDocs(t *testing.T) {
	cfg := testConfig(t)
	cfg.SkipDocs = true
	runner := &fakeRunner{goroot: fakeGoroot(t, filepath.Join("misc", "wasm", "wasm_exec.js"))}

	if err := Build(context.Background(), cfg, runner); err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, c := range runner.calls {
		if c.name == "mkdocs" {
			t.Error("Expected mkdocs to be skipped")
		}
	}
}

func TestBuildStopsOnFailure(t *testing.T) {
	tests := []struct {
		name      string
		fail      string
		wantErr   string
		wantCalls int
	}{
		{"docs", "mkdocs build", "mkdocs build", 1},
		{"wasm", "go build", "wasm build", 2},
		{"goroot", "go env", "copy wasm_exec.js", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{goroot: t.TempDir(), fail: tt.fail}
			err := Build(context.Background(), testConfig(t), runner)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Expected error containing %q, got %v", tt.wantErr, err)
			}
			if len(runner.calls) != tt.wantCalls {
				t.Errorf("Expected %d calls, got %d", tt.wantCalls, len(runner.calls))
			}
		})
	}
}

func TestBuildMissingLoader(t *testing.T) {
	runner := &fakeRunner{goroot: t.TempDir()}
	err := Build(context.Background(), testConfig(t), runner)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected loader not found error, got %v", err)
	}
}

func TestHandler(t *testing.T) {
	site := t.TempDir()
	if err := os.WriteFile(filepath.Join(site, "main.wasm"), []byte("\x00asm"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(Handler(site))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 from health, got %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/main.wasm")
	if err != nil {
		t.Fatalf("get wasm: %v", err)
	}
	resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/wasm" {
		t.Errorf("Expected application/wasm, got %q", ct)
	}
}
