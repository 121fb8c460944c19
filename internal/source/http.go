package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/drinkmap/internal/source/model"
	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxPayloadSize     = 64 << 20
)

func init() {
	Register("http", httpSourceFactory)
	Register("https", httpSourceFactory)
}

func httpSourceFactory(schema string, host string, params *model.Params) (ISource, error) {
	if host == "" {
		return nil, fmt.Errorf("http source requires a host")
	}
	u := *params.URL
	// source parameters are consumed here and not forwarded upstream
	u.RawQuery = ""
	timeout := time.Duration(params.CustomParams.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &httpSource{
		endpoint: u.String(),
		format:   params.CustomParams.Format,
		limit:    maxPayloadSize,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				IdleConnTimeout:     30 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}, nil
}

type httpSource struct {
	endpoint string
	format   string
	limit    int64
	client   *http.Client
}

func (h *httpSource) String() string {
	return "http:" + h.endpoint
}

func (h *httpSource) Format() string {
	return h.format
}

func (h *httpSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build http request: %w", err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", h.endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", h.endpoint, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, h.limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", h.endpoint, err)
	}
	if int64(len(data)) > h.limit {
		return nil, fmt.Errorf("fetch %s: body exceeds %d bytes", h.endpoint, h.limit)
	}
	logutil.GetLogger(ctx).Debug("http source fetched", zap.String("endpoint", h.endpoint), zap.Int("size", len(data)))
	return data, nil
}
