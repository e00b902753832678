// Package sitebuild builds the static documentation site and the wasm bundle
// of the viewer that is embedded in it.
package sitebuild

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds sitebuild command configuration.
type Config struct {
	SiteDir  string `env:"SITEBUILD_SITE_DIR" envDefault:"site"`
	Mkdocs   string `env:"SITEBUILD_MKDOCS_CONFIG" envDefault:"mkdocs.yml"`
	Entry    string `env:"SITEBUILD_ENTRY" envDefault:"."`
	Out      string `env:"SITEBUILD_OUT" envDefault:"site/assets/wasm/main.wasm"`
	SkipDocs bool   `env:"SITEBUILD_SKIP_DOCS"`
	Serve    string `env:"SITEBUILD_SERVE"`
}

// ParseConfig parses environment and flags into a Config. Flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.SiteDir, "site-dir", cfg.SiteDir, "site output directory, removed before each build")
	fs.StringVar(&cfg.Mkdocs, "config", cfg.Mkdocs, "mkdocs configuration file")
	fs.StringVar(&cfg.Entry, "entry", cfg.Entry, "package to compile to wasm")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "wasm bundle path")
	fs.BoolVar(&cfg.SkipDocs, "skip-docs", cfg.SkipDocs, "skip the mkdocs step")
	fs.StringVar(&cfg.Serve, "serve", cfg.Serve, "serve the site on this address after building")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.SiteDir == "" {
		return Config{}, errors.New("site-dir is required")
	}
	if cfg.Out == "" {
		return Config{}, errors.New("out is required")
	}
	return cfg, nil
}

// Runner runs an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, env []string, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec in the current directory.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, env []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return out, nil
}

// ErrUnsafeSiteDir is returned when the site dir would take the source tree
// down with it.
var ErrUnsafeSiteDir = errors.New("refusing to clear site dir")

// Clear removes dir and everything in it. A missing dir is not an error.
// The filesystem root, the working directory or any of its parents, and
// module roots are refused.
func Clear(dir string) error {
	if err := checkClearable(dir); err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clear %s: %w", dir, err)
	}
	return nil
}

func checkClearable(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafeSiteDir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	if abs == filepath.Dir(abs) {
		return fmt.Errorf("%w: %s is the filesystem root", ErrUnsafeSiteDir, abs)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working dir: %w", err)
	}
	if rel, err := filepath.Rel(abs, wd); err == nil && (rel == "." || !strings.HasPrefix(rel, "..")) {
		return fmt.Errorf("%w: %s contains the working dir", ErrUnsafeSiteDir, abs)
	}
	if _, err := os.Stat(filepath.Join(abs, "go.mod")); err == nil {
		return fmt.Errorf("%w: %s is a module root", ErrUnsafeSiteDir, abs)
	}
	return nil
}

// Build runs the pipeline: clear the site, build the docs, compile the wasm
// bundle and copy the wasm_exec.js loader next to it. The first failing step
// stops the build.
func Build(ctx context.Context, cfg Config, runner Runner) error {
	if err := Clear(cfg.SiteDir); err != nil {
		return err
	}

	if !cfg.SkipDocs {
		log.Printf("building docs from %s", cfg.Mkdocs)
		if _, err := runner.Run(ctx, nil, "mkdocs", "build", "--config-file", cfg.Mkdocs, "--site-dir", cfg.SiteDir); err != nil {
			return fmt.Errorf("mkdocs build: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Out), 0o755); err != nil {
		return fmt.Errorf("create bundle dir: %w", err)
	}
	log.Printf("compiling %s to %s", cfg.Entry, cfg.Out)
	if _, err := runner.Run(ctx, []string{"GOOS=js", "GOARCH=wasm"},
		"go", "build", "-ldflags=-s -w", "-o", cfg.Out, cfg.Entry); err != nil {
		return fmt.Errorf("wasm build: %w", err)
	}

	if err := copyWasmExec(ctx, runner, filepath.Dir(cfg.Out)); err != nil {
		return fmt.Errorf("copy wasm_exec.js: %w", err)
	}
	return nil
}

// wasmExecPaths are where Go releases have shipped the loader, newest first.
var wasmExecPaths = []string{
	filepath.Join("lib", "wasm", "wasm_exec.js"),
	filepath.Join("misc", "wasm", "wasm_exec.js"),
}

func copyWasmExec(ctx context.Context, runner Runner, dstDir string) error {
	out, err := runner.Run(ctx, nil, "go", "env", "GOROOT")
	if err != nil {
		return err
	}
	goroot := string(bytes.TrimSpace(out))
	if goroot == "" {
		return errors.New("empty GOROOT")
	}

	for _, rel := range wasmExecPaths {
		src := filepath.Join(goroot, rel)
		if _, err := os.Stat(src); err == nil {
			return copyFile(src, filepath.Join(dstDir, "wasm_exec.js"))
		}
	}
	return fmt.Errorf("wasm_exec.js not found under %s", goroot)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
