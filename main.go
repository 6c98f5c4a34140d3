package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := DefaultConfig()
	fs.StringVar(&cfg.Host, "host", cfg.Host, helpHost)
	fs.IntVar(&cfg.Port, "port", cfg.Port, helpPort)
	fs.IntVar(&cfg.Port, "p", cfg.Port, helpPort+" (shorthand)")
	fs.StringVar(&cfg.Root, "root", cfg.Root, helpRoot)
	fs.StringVar(&cfg.Extensions, "ext", cfg.Extensions, helpExt)
	fs.IntVar(&cfg.MaxConns, "max-conns", cfg.MaxConns, helpMaxConns)
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, helpTimeout)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("E %v", err)
	}

	root, err := os.OpenRoot(cfg.Root)
	if err != nil {
		log.Fatalf("E failed to open document root: %v", err)
	}
	defer root.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewServer(cfg, root).ListenAndServe(ctx); err != nil {
		log.Printf("E %v", err)
	}
	log.Printf("I server stopped")
}
