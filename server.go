package main

import (
	"context"
	"errors"
	"log"
	"net"
	"os"
	"time"
)

type Server struct {
	addr    string
	proc    *Processor
	pool    *Pool
	timeout time.Duration
}

func NewServer(cfg Config, root *os.Root) *Server {
	return &Server{
		addr:    cfg.Addr(),
		proc:    NewProcessor(root, ParseExtensions(cfg.Extensions)),
		pool:    NewPool(cfg.MaxConns),
		timeout: cfg.Timeout,
	}
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	log.Printf("I listening on %s", ln.Addr())
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled or ln is closed, then
// waits for the workers still running. Serve closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		ln.Close()
	})
	defer stop()
	defer ln.Close()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break
			}
			log.Printf("E accept error: %v", err)
			continue
		}
		err = s.pool.Go(ctx, func() {
			NewWorker(s.proc, s.timeout).Start(ctx, conn)
		})
		if err != nil {
			conn.Close()
			break
		}
	}

	log.Printf("I waiting for workers")
	s.pool.Wait()
	return nil
}
