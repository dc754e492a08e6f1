package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"ovi/geoservices/internal/request"
)

// Result is the outcome of one HTTP exchange.
type Result struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Handle is an in-flight request. Done delivers exactly one Result;
// Cancel aborts the exchange, in which case the Result carries the
// cancellation error.
type Handle struct {
	done   chan Result
	cancel context.CancelFunc
}

func (h *Handle) Done() <-chan Result { return h.done }

func (h *Handle) Cancel() { h.cancel() }

// Client issues asynchronous HTTP requests against the vendor
// services.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (*Handle, error)
	Post(ctx context.Context, url string, headers map[string]string, body []byte) (*Handle, error)
}

// Options configures the HTTP client.
type Options struct {
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerSecond int
	Locale            string
	Proxies           ProxySupplier
}

type client struct {
	rl      ratelimit.Limiter
	proxies ProxySupplier

	mu         sync.Mutex
	httpClient *resty.Client
}

func NewClient(opts Options) Client {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 10
	}

	httpClient := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36").
		SetHeader("Accept", "application/json").
		SetHeader("Accept-Language", request.AcceptLanguage(opts.Locale)).
		SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: true,
		})

	if opts.Proxies != nil {
		if proxyURL := opts.Proxies.Get(); proxyURL != "" {
			httpClient.SetProxy(proxyURL)
			log.Infof("Using initial proxy: %s", proxyURL)
		}
	}

	return &client{
		rl:         ratelimit.New(opts.RequestsPerSecond),
		httpClient: httpClient,
		proxies:    opts.Proxies,
	}
}

func (c *client) Get(ctx context.Context, url string, headers map[string]string) (*Handle, error) {
	return c.execute(ctx, http.MethodGet, url, headers, nil)
}

func (c *client) Post(ctx context.Context, url string, headers map[string]string, body []byte) (*Handle, error) {
	return c.execute(ctx, http.MethodPost, url, headers, body)
}

func (c *client) execute(ctx context.Context, method, url string, headers map[string]string, body []byte) (*Handle, error) {
	if url == "" {
		return nil, fmt.Errorf("empty request url")
	}

	reqCtx, cancel := context.WithCancel(ctx)
	handle := &Handle{
		done:   make(chan Result, 1),
		cancel: cancel,
	}

	go func() {
		defer cancel()

		c.rl.Take()

		resp, err := c.newRequest(reqCtx, headers, body).Execute(method, url)
		if err != nil && reqCtx.Err() == nil {
			if retry := c.nextProxyRequest(reqCtx, headers, body); retry != nil {
				log.Infof("Retrying %s %s with next proxy", method, url)
				resp, err = retry.Execute(method, url)
			}
		}
		if err != nil {
			if reqCtx.Err() != nil {
				err = fmt.Errorf("request cancelled: %w", reqCtx.Err())
			} else {
				err = fmt.Errorf("failed to fetch URL: %w", err)
			}
			log.Debugf("Request %s %s failed: %v", method, url, err)
			handle.done <- Result{Err: err}
			return
		}

		log.Debugf("Request %s %s completed with status %d", method, url, resp.StatusCode())
		handle.done <- Result{
			StatusCode: resp.StatusCode(),
			Body:       resp.Bytes(),
		}
	}()

	return handle, nil
}

func (c *client) newRequest(ctx context.Context, headers map[string]string, body []byte) *resty.Request {
	c.mu.Lock()
	req := c.httpClient.R().SetContext(ctx)
	c.mu.Unlock()

	for name, value := range headers {
		req.SetHeader(name, value)
	}
	if body != nil {
		req.SetBody(body)
	}
	return req
}

// nextProxyRequest rotates the client to the next proxy after a
// transport failure and prepares the retry. Returns nil when no proxy
// is available.
func (c *client) nextProxyRequest(ctx context.Context, headers map[string]string, body []byte) *resty.Request {
	if c.proxies == nil {
		return nil
	}
	next := c.proxies.Get()
	if next == "" {
		return nil
	}

	log.Infof("Switching to next proxy: %s", next)
	c.mu.Lock()
	c.httpClient.SetProxy(next)
	c.mu.Unlock()

	return c.newRequest(ctx, headers, body)
}
