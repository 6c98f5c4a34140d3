package main

import (
	"context"
	"errors"
	"log"
	"net"
	"time"
)

type closeWriter interface {
	CloseWrite() error
}

// Worker serves exactly one request on one connection and then closes it.
type Worker struct {
	conn    net.Conn
	proc    *Processor
	timeout time.Duration
	ctx     context.Context
	text    string
	res     *Response
}

type stateFunc func(*Worker) stateFunc

func NewWorker(proc *Processor, timeout time.Duration) *Worker {
	return &Worker{
		proc:    proc,
		timeout: timeout,
	}
}

// Start runs the worker to completion. The worker takes ownership of conn.
// Cancelling ctx while the request is being read drops the connection.
func (w *Worker) Start(ctx context.Context, conn net.Conn) {
	w.ctx = ctx
	w.conn = conn
	log.Printf("I talking to %s", conn.RemoteAddr())

	if w.timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(w.timeout)); err != nil {
			log.Printf("W failed to set deadline: %v", err)
		}
	}

	for state := waitForRequest; state != nil; {
		state = state(w)
	}
}

// state funcs

func waitForRequest(w *Worker) stateFunc {
	r := NewRequestReader(w.conn)
	r.Start()
	select {
	case text := <-r.RequestReceived():
		w.text = text
		return processRequest
	case err := <-r.ErrorOccurred():
		if errors.Is(err, ErrEmptyRequest) {
			log.Printf("I %s sent nothing", w.conn.RemoteAddr())
		} else {
			log.Printf("E dropping %s: %v", w.conn.RemoteAddr(), err)
		}
		return finishWorker
	case <-w.ctx.Done():
		log.Println("W waitForRequest cancelled")
		return finishWorker
	}
}

func processRequest(w *Worker) stateFunc {
	w.res = w.proc.Process(w.text)
	req, _ := ParseRequestLine(w.text)
	log.Printf("I %s %q -> %d %s", req.Method, req.Target, w.res.Status, w.res.Phrase)
	return sendResponse
}

func sendResponse(w *Worker) stateFunc {
	b := RenderResponse(w.res)
	log.Printf("I sending %d bytes to %s", len(b), w.conn.RemoteAddr())
	if _, err := w.conn.Write(b); err != nil {
		log.Printf("E write to %s failed: %v", w.conn.RemoteAddr(), err)
		return finishWorker
	}
	if cw, ok := w.conn.(closeWriter); ok {
		if err := cw.CloseWrite(); err != nil {
			log.Printf("W shutdown of %s failed: %v", w.conn.RemoteAddr(), err)
		}
	}
	return finishWorker
}

func finishWorker(w *Worker) stateFunc {
	if err := w.conn.Close(); err != nil {
		log.Printf("W close failed: %v", err)
	}
	log.Printf("I connection closed")
	return nil
}
