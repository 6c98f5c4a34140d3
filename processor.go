package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

const (
	RedirectPath     = "csumn"
	RedirectLocation = "https://www.cs.umn.edu/"

	othersRead os.FileMode = 0o004
)

var DefaultExtensions = []string{"html", "jpeg", "gif", "pdf", "doc", "pptx"}

// Processor turns request text into a response. It only ever reads from the
// document root, so one Processor is safe for concurrent use.
type Processor struct {
	root       *os.Root
	extensions map[string]struct{}
}

func NewProcessor(root *os.Root, extensions []string) *Processor {
	p := &Processor{
		root:       root,
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, ext := range extensions {
		p.extensions[ext] = struct{}{}
	}
	return p
}

func (p *Processor) Process(text string) *Response {
	req, ok := ParseRequestLine(text)
	return p.respond(req, ok)
}

func (p *Processor) respond(req *Request, wellFormed bool) *Response {
	version := normalizeVersion(req.Version)
	withBody := req.Method == "GET"

	if req.Method != "GET" && req.Method != "HEAD" {
		return NewResponse(version, StatusMethodNotAllowed)
	}
	if !wellFormed {
		return p.errorResponse(version, StatusBadRequest, withBody)
	}

	path := strings.TrimLeft(req.Target, "/")
	if path == RedirectPath {
		res := NewResponse(version, StatusMovedPermanently)
		if withBody {
			res.AddHeader("Location", RedirectLocation)
		}
		return res
	}
	if strings.Contains(path, "%") {
		return p.errorResponse(version, StatusBadRequest, withBody)
	}

	info, err := p.root.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return p.errorResponse(version, StatusNotFound, withBody)
	}
	if info.Mode().Perm()&othersRead == 0 {
		return p.errorResponse(version, StatusForbidden, withBody)
	}
	if !p.allowed(path) {
		return p.errorResponse(version, StatusNotAcceptable, withBody)
	}

	res := NewResponse(version, StatusOK)
	if withBody {
		res.WithBody(p.loadResource(path))
	}
	return res
}

func (p *Processor) allowed(path string) bool {
	_, ok := p.extensions[extensionOf(path)]
	return ok
}

func (p *Processor) errorResponse(version string, status int, withBody bool) *Response {
	res := NewResponse(version, status)
	if withBody {
		res.WithBody(p.loadPage(fmt.Sprintf("%d.html", status)))
	}
	return res
}

// loadResource returns the bytes served for a 200. html resources share the
// error-page fallback; anything else is logged when it cannot be read.
func (p *Processor) loadResource(path string) []byte {
	if extensionOf(path) == "html" {
		return p.loadPage(path)
	}
	b, err := p.readFile(path)
	if err != nil {
		log.Printf("W failed to read %s: %v", path, err)
		return nil
	}
	return b
}

// loadPage reads an html page, falling back to an empty body when the page is
// missing or unreadable.
func (p *Processor) loadPage(name string) []byte {
	b, err := p.readFile(name)
	if err != nil {
		return nil
	}
	return b
}

func (p *Processor) readFile(name string) ([]byte, error) {
	f, err := p.root.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// extensionOf returns the text after the last '.', or the whole path when
// there is none.
func extensionOf(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}
