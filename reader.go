package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const BufSize = 4096

var (
	ErrEmptyRequest    = errors.New("empty request")
	ErrInvalidEncoding = errors.New("request is not valid UTF-8")
)

// RequestReader reads the raw request text from a connection. It performs
// exactly one read of at most BufSize bytes; a request split across several
// packets is truncated to the first one.
type RequestReader struct {
	r      io.Reader
	textCh chan string
	errCh  chan error
}

func NewRequestReader(r io.Reader) *RequestReader {
	return &RequestReader{
		r:      r,
		textCh: make(chan string, 1),
		errCh:  make(chan error, 1),
	}
}

func (r *RequestReader) Start() {
	go func() {
		text, err := r.readOnce()
		if err != nil {
			r.errCh <- err
			return
		}
		r.textCh <- text
	}()
}

func (r *RequestReader) readOnce() (string, error) {
	buf := make([]byte, BufSize)
	n, err := r.r.Read(buf)
	if n == 0 {
		if err == nil || err == io.EOF {
			return "", ErrEmptyRequest
		}
		return "", fmt.Errorf("failed to read request: %w", err)
	}
	if !utf8.Valid(buf[:n]) {
		return "", ErrInvalidEncoding
	}
	return string(buf[:n]), nil
}

func (r *RequestReader) RequestReceived() <-chan string {
	return r.textCh
}

func (r *RequestReader) ErrorOccurred() <-chan error {
	return r.errCh
}

// ParseRequestLine splits the first line of text on single spaces. The first
// token is the method, the last the version, and everything in between is the
// target, so targets may contain literal spaces. ok is false when the line has
// fewer than three tokens; Method is still filled in.
func ParseRequestLine(text string) (req *Request, ok bool) {
	line, _, _ := strings.Cut(text, "\n")
	line = strings.TrimSuffix(line, "\r")

	fields := strings.Split(line, " ")
	req = &Request{
		Method:  fields[0],
		Version: fields[len(fields)-1],
	}
	if len(fields) < 3 {
		return req, false
	}
	req.Target = strings.Join(fields[1:len(fields)-1], " ")
	return req, true
}
