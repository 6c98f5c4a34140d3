package main

import (
	"context"
	"sync"
)

// Pool runs tasks on their own goroutines, with at most size of them in
// flight. A size of zero or less means no limit.
type Pool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

func NewPool(size int) *Pool {
	p := &Pool{}
	if size > 0 {
		p.sem = make(chan struct{}, size)
	}
	return p
}

// Go blocks until a slot is free, then runs f. It returns ctx.Err() without
// running f if ctx is done first.
func (p *Pool) Go(ctx context.Context, f func()) error {
	if p.sem != nil {
		select {
		case p.sem <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.wg.Add(1)
	go func() {
		defer func() {
			if p.sem != nil {
				<-p.sem
			}
			p.wg.Done()
		}()
		f()
	}()
	return nil
}

// Wait blocks until every task started by Go has returned.
func (p *Pool) Wait() {
	p.wg.Wait()
}
