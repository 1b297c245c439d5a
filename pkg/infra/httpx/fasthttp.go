package httpx

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout      = 10 * time.Second
	defaultConnsPerHost = 64
	defaultIdleConn     = 10 * time.Second
	// Green responses are small JSON documents.
	defaultMaxBodySize = 4 << 20
)

type clientConfig struct {
	timeout   time.Duration
	userAgent string
}

type FastHTTPClientOption func(*clientConfig)

// WithTimeout bounds the read and the write phase of every call.
func WithTimeout(timeout time.Duration) FastHTTPClientOption {
	return func(c *clientConfig) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUserAgent is sent when the request does not carry its own.
func WithUserAgent(userAgent string) FastHTTPClientOption {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// FastHTTPClient adapts a fasthttp.Client to the net/http shaped Client used
// by the moderation providers.
type FastHTTPClient struct {
	inner     *fasthttp.Client
	userAgent string
}

func NewFastHTTPClient(opts ...FastHTTPClientOption) *FastHTTPClient {
	cfg := clientConfig{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FastHTTPClient{
		inner: &fasthttp.Client{
			ReadTimeout:         cfg.timeout,
			WriteTimeout:        cfg.timeout,
			MaxConnsPerHost:     defaultConnsPerHost,
			MaxIdleConnDuration: defaultIdleConn,
			MaxResponseBodySize: defaultMaxBodySize,
		},
		userAgent: cfg.userAgent,
	}
}

// Do honours req.Context(): its deadline becomes the fasthttp deadline and
// cancellation returns at once. fasthttp cannot abort a call in flight, so an
// abandoned call finishes in the background within the read timeout before its
// buffers go back to the pool.
func (c *FastHTTPClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	freq := fasthttp.AcquireRequest()
	fresp := fasthttp.AcquireResponse()
	release := func() {
		fasthttp.ReleaseRequest(freq)
		fasthttp.ReleaseResponse(fresp)
	}

	if err := c.copyRequest(req, freq); err != nil {
		release()
		return nil, err
	}

	result := make(chan error, 1)
	go func() {
		deadline, ok := ctx.Deadline()
		if !ok {
			result <- c.inner.Do(freq, fresp)
			return
		}
		result <- c.inner.DoDeadline(freq, fresp, deadline)
	}()

	select {
	case err := <-result:
		defer release()
		if err != nil {
			return nil, err
		}
		return toHTTPResponse(req, fresp)
	case <-ctx.Done():
		go func() {
			<-result
			release()
		}()
		return nil, ctx.Err()
	}
}

func (c *FastHTTPClient) copyRequest(src *http.Request, dst *fasthttp.Request) error {
	dst.Header.SetMethod(src.Method)
	if src.URL != nil {
		dst.SetRequestURI(src.URL.String())
	}
	switch {
	case src.Host != "":
		dst.Header.SetHost(src.Host)
	case src.URL != nil && src.URL.Host != "":
		dst.Header.SetHost(src.URL.Host)
	}

	for name, values := range src.Header {
		dst.Header.Del(name)
		for _, v := range values {
			dst.Header.Add(name, v)
		}
	}
	if c.userAgent != "" && src.Header.Get("User-Agent") == "" {
		dst.Header.SetUserAgent(c.userAgent)
	}

	if src.Body == nil {
		return nil
	}
	defer src.Body.Close() //nolint:errcheck
	payload, err := io.ReadAll(src.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	dst.SetBodyRaw(payload)
	return nil
}

// toHTTPResponse copies fresp, decoding its Content-Encoding. Nothing returned
// aliases fasthttp buffers.
func toHTTPResponse(req *http.Request, fresp *fasthttp.Response) (*http.Response, error) {
	payload, decoded, err := DecodeChain(fresp, fresp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	payload = bytes.Clone(payload)

	header := make(http.Header)
	fresp.Header.VisitAll(func(k, v []byte) {
		header.Add(string(k), string(v))
	})
	if decoded {
		header.Del("Content-Encoding")
		header.Set("Content-Length", strconv.Itoa(len(payload)))
	}

	code := fresp.StatusCode()
	return &http.Response{
		Status:        strconv.Itoa(code) + " " + http.StatusText(code),
		StatusCode:    code,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(payload)),
		ContentLength: int64(len(payload)),
		Request:       req,
	}, nil
}
