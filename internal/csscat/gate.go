package csscat

import (
	"net"
	"net/http"
	"os"
	"path/filepath"
)

// WriteAuthorization decides whether the aggregate may be persisted.
// The pipeline asks exactly once per run.
type WriteAuthorization interface {
	AllowWrite() bool
}

// AuthorizationFunc adapts a plain function to WriteAuthorization
type AuthorizationFunc func() bool

// AllowWrite calls f
func (f AuthorizationFunc) AllowWrite() bool { return f() }

// Deny never allows a write
var Deny WriteAuthorization = AuthorizationFunc(func() bool { return false })

// Gate is the combined write condition: a loopback caller that asked for a
// print with the unlock signal, and a sentinel file next to the tool.
type Gate struct {
	RemoteAddr   string // "127.0.0.1" or "127.0.0.1:53211"
	Print        bool
	Unlock       bool
	SentinelPath string
}

// AllowWrite reports whether all four conditions hold
func (g Gate) AllowWrite() bool {
	if !IsLoopback(g.RemoteAddr) || !g.Print || !g.Unlock {
		return false
	}
	if g.SentinelPath == "" {
		return false
	}
	info, err := os.Stat(g.SentinelPath)
	return err == nil && !info.IsDir()
}

// LocalGate builds the gate for a process running on this machine
func LocalGate(print, unlock bool, selfDir, sentinelName string) Gate {
	return Gate{
		RemoteAddr:   "127.0.0.1",
		Print:        print,
		Unlock:       unlock,
		SentinelPath: sentinelPath(selfDir, sentinelName),
	}
}

// RequestGate builds the gate from an HTTP request: its remote address and
// the presence of the print and unlock query parameters
func RequestGate(r *http.Request, selfDir, sentinelName string) Gate {
	query := r.URL.Query()
	return Gate{
		RemoteAddr:   r.RemoteAddr,
		Print:        query.Has("print"),
		Unlock:       query.Has("unlock"),
		SentinelPath: sentinelPath(selfDir, sentinelName),
	}
}

// IsLoopback reports whether addr (with or without a port) is the IPv4 loopback address
func IsLoopback(addr string) bool {
	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.Equal(net.IPv4(127, 0, 0, 1))
}

func sentinelPath(selfDir, name string) string {
	if name == "" {
		return ""
	}
	return filepath.Join(selfDir, name)
}
