package embedded

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"
)

// HandleConn synchronously serves a single HTTP request from conn: it reads
// one request, dispatches it into handler, and writes the response back. It
// returns once the response bytes are on the wire, so the caller's loop can
// move on to the next connection. The connection is not closed; its
// lifecycle belongs to the caller's network stack.
//
// Malformed requests surface as the parse error from net/http; transport
// failures surface as the connection's error. Handler errors do not reach
// here at all, they become whatever response the handler wrote.
func HandleConn(conn net.Conn, handler http.Handler) error {
	req, err := http.ReadRequest(bufio.NewReader(conn))
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	if addr := conn.RemoteAddr(); addr != nil {
		req.RemoteAddr = addr.String()
	}

	rw := &responseCapture{header: make(http.Header)}
	handler.ServeHTTP(rw, req)
	// drain the body so keep-alive peers don't see it echoed into the
	// next request
	_, _ = io.Copy(io.Discard, req.Body)
	_ = req.Body.Close()

	if err := rw.response(req).Write(conn); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// responseCapture buffers a handler's response in memory so it can be
// serialized onto a blocking connection in one pass.
type responseCapture struct {
	header http.Header
	buf    bytes.Buffer
	status int
}

func (c *responseCapture) Header() http.Header {
	return c.header
}

func (c *responseCapture) WriteHeader(status int) {
	if c.status == 0 {
		c.status = status
	}
}

func (c *responseCapture) Write(b []byte) (int, error) {
	c.WriteHeader(http.StatusOK)
	return c.buf.Write(b)
}

func (c *responseCapture) response(req *http.Request) *http.Response {
	status := c.status
	if status == 0 {
		// a handler that never wrote anything still yields a valid
		// empty 200
		status = http.StatusOK
	}
	body := c.buf.Bytes()
	return &http.Response{
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        c.header,
		ContentLength: int64(len(body)),
		Body:          io.NopCloser(bytes.NewReader(body)),
		// one request per connection: tell the peer not to reuse it
		Close:   true,
		Request: req,
	}
}
