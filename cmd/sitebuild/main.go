package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/worldview/sitebuild"
)

func main() {
	cfg, err := sitebuild.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("[sitebuild] parse flags: %v", err)
	}
	log.SetPrefix("[sitebuild] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sitebuild.Build(ctx, cfg, sitebuild.ExecRunner{}); err != nil {
		log.Fatalf("build failed: %v", err)
	}
	log.Printf("site ready in %s", cfg.SiteDir)

	if cfg.Serve == "" {
		return
	}
	if err := sitebuild.Serve(ctx, cfg.Serve, cfg.SiteDir); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
