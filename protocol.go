package main

const (
	CRLF = "\r\n"

	VersionHTTP10  = "HTTP/1.0"
	VersionHTTP11  = "HTTP/1.1"
	DefaultVersion = VersionHTTP11
)

const (
	StatusOK               = 200
	StatusMovedPermanently = 301
	StatusBadRequest       = 400
	StatusForbidden        = 403
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
	StatusNotAcceptable    = 406
)

var statusPhrases = map[int]string{
	StatusOK:               "OK",
	StatusMovedPermanently: "Moved Permanently",
	StatusBadRequest:       "Bad Request",
	StatusForbidden:        "Forbidden",
	StatusNotFound:         "Not Found",
	StatusMethodNotAllowed: "Method Not Allowed",
	StatusNotAcceptable:    "Not Acceptable",
}

func StatusPhrase(code int) string {
	return statusPhrases[code]
}

// Header is a single response header line. Order is preserved on the wire.
type Header struct {
	Name  string
	Value string
}

type Request struct {
	Method  string
	Target  string
	Version string
}

type Response struct {
	Version string
	Status  int
	Phrase  string
	Headers []Header
	Body    []byte
}

func NewResponse(version string, status int) *Response {
	return &Response{
		Version: version,
		Status:  status,
		Phrase:  StatusPhrase(status),
	}
}

func (res *Response) AddHeader(name, value string) *Response {
	res.Headers = append(res.Headers, Header{name, value})
	return res
}

func (res *Response) WithBody(b []byte) *Response {
	res.Body = b
	return res
}

// normalizeVersion maps anything but HTTP/1.0 and HTTP/1.1 to DefaultVersion.
func normalizeVersion(v string) string {
	switch v {
	case VersionHTTP10, VersionHTTP11:
		return v
	}
	return DefaultVersion
}
