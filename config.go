package main

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultHost = "localhost"
	DefaultPort = 9001
)

const (
	helpHost     = "specify a host to operate on"
	helpPort     = "specify a port to operate on"
	helpRoot     = "document root served by the server"
	helpExt      = "comma-separated list of file extensions that may be served"
	helpMaxConns = "maximum number of connections served at once, 0 for no limit"
	helpTimeout  = "deadline for reading and answering one connection, 0 for none"
)

type Config struct {
	Host       string
	Port       int
	Root       string
	Extensions string
	MaxConns   int
	Timeout    time.Duration
}

func DefaultConfig() Config {
	return Config{
		Host:       DefaultHost,
		Port:       DefaultPort,
		Root:       ".",
		Extensions: strings.Join(DefaultExtensions, ","),
	}
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Root == "" {
		return fmt.Errorf("empty document root")
	}
	if len(ParseExtensions(c.Extensions)) == 0 {
		return fmt.Errorf("no file extensions allowed")
	}
	if c.MaxConns < 0 {
		return fmt.Errorf("invalid connection limit: %d", c.MaxConns)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %v", c.Timeout)
	}
	return nil
}

// ParseExtensions splits a comma-separated list, dropping blanks and any
// leading '.' so that ".html" and "html" mean the same thing.
func ParseExtensions(s string) []string {
	var exts []string
	for _, e := range strings.Split(s, ",") {
		e = strings.TrimPrefix(strings.TrimSpace(e), ".")
		if e != "" {
			exts = append(exts, e)
		}
	}
	return exts
}
