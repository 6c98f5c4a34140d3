package main

import (
	"bytes"
	"fmt"
	"io"
	"unicode"
)

func capitalizeHeader(h string) string {
	ret := make([]rune, 0, len(h))
	cap := true
	for _, c := range h {
		if cap && unicode.IsLetter(c) {
			ret = append(ret, unicode.ToUpper(c))
			cap = false
		} else {
			ret = append(ret, c)
		}
		if c == '-' {
			cap = true
		}
	}
	return string(ret)
}

// RenderResponse serializes res into wire bytes. A response without headers
// still carries an empty header line before the blank separator line.
func RenderResponse(res *Response) []byte {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%s %d %s%s", res.Version, res.Status, res.Phrase, CRLF)
	if len(res.Headers) == 0 {
		buf.WriteString(CRLF)
	}
	for _, h := range res.Headers {
		fmt.Fprintf(buf, "%s: %s%s", capitalizeHeader(h.Name), h.Value, CRLF)
	}
	buf.WriteString(CRLF)
	buf.Write(res.Body)
	return buf.Bytes()
}

func WriteResponse(w io.Writer, res *Response) (int, error) {
	return w.Write(RenderResponse(res))
}
