// Package server serves the hello route over HTTP.
package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
)

const (
	DefaultPort = 3000

	// Greeting is the body written for GET /.
	Greeting = "Hello World"
)

// Config holds the listen address. It is fixed once Start is called.
type Config struct {
	Host string
	Port int
}

func DefaultConfig() Config {
	return Config{Port: DefaultPort}
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

var errInvalidPort = errors.New("invalid port number")

// BindError reports that the listener could not be bound to Addr.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("listen on %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Listen binds a TCP listener for cfg. It does not retry and does not try
// another port.
func Listen(cfg Config) (net.Listener, error) {
	addr := cfg.Addr()
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, &BindError{Addr: addr, Err: errInvalidPort}
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		var opErr *net.OpError
		if errors.As(err, &opErr) {
			err = opErr.Err
		}
		return nil, &BindError{Addr: addr, Err: err}
	}
	return ln, nil
}

// Handler returns the route table. Only GET / is registered; everything else
// gets the net/http not found response.
func Handler() http.Handler {
	rt := NewRouter()
	rt.HandleFunc(http.MethodGet, "/", handleRoot)
	return rt
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(Greeting))
}

// Serve answers requests on ln until it fails.
func Serve(ln net.Listener) error {
	srv := &http.Server{Handler: Handler()}
	return srv.Serve(ln)
}

// Start binds cfg and serves forever. announce, if non-nil, is called once
// with the serving URL after the bind succeeds.
func Start(cfg Config, announce func(url string)) error {
	ln, err := Listen(cfg)
	if err != nil {
		return err
	}
	if announce != nil {
		announce(URL(cfg.Host, ln.Addr()))
	}
	return Serve(ln)
}

// URL renders the address a client should use to reach addr. An empty host
// is shown as localhost.
func URL(host string, addr net.Addr) string {
	_, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String()
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
