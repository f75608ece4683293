package gopher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"syscall"
	"time"

	"burrow/internal/domain"
)

// ContentKind selects how a response body is handed back
type ContentKind int

const (
	KindText ContentKind = iota
	KindBinary
)

// Dialer opens the byte stream to a server. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Request is one selector to fetch from one server
type Request struct {
	Host     string
	Port     int
	Selector string
	Kind     ContentKind
}

// RequestFor builds the request that activating an entry sends
func RequestFor(e domain.DirectoryEntry, kind ContentKind) Request {
	return Request{Host: e.Hostname, Port: e.Port, Selector: e.Selector, Kind: kind}
}

// Addr returns the dial address, substituting the default port for a missing one
func (r Request) Addr() string {
	port := r.Port
	if port <= 0 {
		port = domain.DefaultPort
	}
	return net.JoinHostPort(r.Host, strconv.Itoa(port))
}

// Response is a complete server reply
type Response struct {
	Kind ContentKind
	Text string // set for KindText
	Data []byte // set for KindBinary
}

// Client performs Gopher transactions: send selector, read until the server closes
type Client struct {
	dialer   Dialer
	decoder  *Decoder
	maxBytes int64
	logger   *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithDialer replaces the transport
func WithDialer(d Dialer) Option {
	return func(c *Client) { c.dialer = d }
}

// WithDecoder sets the text decoder
func WithDecoder(d *Decoder) Option {
	return func(c *Client) { c.decoder = d }
}

// WithMaxBytes limits response size; 0 means unlimited
func WithMaxBytes(n int64) Option {
	return func(c *Client) { c.maxBytes = n }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client that dials TCP directly
func NewClient(opts ...Option) *Client {
	c := &Client{
		dialer: &net.Dialer{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.decoder == nil {
		c.decoder, _ = NewDecoder(DefaultCharset)
	}
	return c
}

// Fetch sends the selector and reads the whole reply. Cancelling ctx closes the
// connection at once; whatever was read so far is thrown away.
func (c *Client) Fetch(ctx context.Context, req Request) (Response, error) {
	addr := req.Addr()
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return Response{}, c.failure(ctx, addr, err)
	}

	conn, err := c.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return Response{}, c.failure(ctx, addr, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	w := bufio.NewWriter(conn)
	if _, err := w.WriteString(req.Selector + "\r\n"); err != nil {
		return Response{}, c.failure(ctx, addr, fmt.Errorf("sending selector: %w", err))
	}
	if err := w.Flush(); err != nil {
		return Response{}, c.failure(ctx, addr, fmt.Errorf("sending selector: %w", err))
	}

	var r io.Reader = conn
	if c.maxBytes > 0 {
		r = io.LimitReader(conn, c.maxBytes+1)
	}
	raw, err := io.ReadAll(r)
	if ctx.Err() != nil {
		return Response{}, c.failure(ctx, addr, ctx.Err())
	}
	if err != nil {
		return Response{}, c.failure(ctx, addr, fmt.Errorf("reading response: %w", err))
	}
	if c.maxBytes > 0 && int64(len(raw)) > c.maxBytes {
		return Response{}, &FetchError{Kind: NetworkFailure, Addr: addr, Err: fmt.Errorf("%w: more than %d bytes", ErrTooLarge, c.maxBytes)}
	}

	c.logger.Debug("fetched", "addr", addr, "selector", req.Selector, "bytes", len(raw), "elapsed", time.Since(start))

	if req.Kind == KindBinary {
		return Response{Kind: KindBinary, Data: raw}, nil
	}
	return Response{Kind: KindText, Text: c.decoder.Decode(raw)}, nil
}

func (c *Client) failure(ctx context.Context, addr string, err error) error {
	fe := &FetchError{Kind: NetworkFailure, Addr: addr, Err: err}
	switch {
	case ctx.Err() != nil:
		fe.Kind = Cancelled
		fe.Err = ErrCancelled
	case errors.Is(err, os.ErrPermission), errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		fe.Kind = SecurityDenied
	}
	c.logger.Debug("fetch failed", "addr", addr, "kind", fe.Kind.String(), "error", err)
	return fe
}
