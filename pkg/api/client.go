package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"github.com/moonticket/backend/pkg/xcontext"
)

type Client interface {
	Header(name, value string) Client
	Query(query Parameter) Client
	GET(ctx context.Context) (*Response, error)
}

type Generator interface {
	New(path string, args ...any) Client
}

type defaultGenerator struct {
	domains []string
}

// NewGenerator creates clients sharing the same path over several mirrors of
// one API.
func NewGenerator(domains ...string) *defaultGenerator {
	return &defaultGenerator{domains: domains}
}

func (g *defaultGenerator) New(path string, args ...any) Client {
	return &defaultClient{
		domains: g.domains,
		path:    fmt.Sprintf(path, args...),
		headers: make(http.Header),
	}
}

type defaultClient struct {
	domains []string
	path    string
	headers http.Header
	query   Parameter
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers.Set(name, value)
	return c
}

func (c *defaultClient) Query(query Parameter) Client {
	c.query = query
	return c
}

// GET tries the domains in random order and returns the first response whose
// body could be parsed.
func (c *defaultClient) GET(ctx context.Context) (*Response, error) {
	for _, index := range rand.Perm(len(c.domains)) {
		url := c.domains[index] + c.path
		if c.query != nil {
			url = url + "?" + c.query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header = c.headers.Clone()

		result, err := xcontext.HTTPClient(ctx).Do(req)
		if err != nil {
			xcontext.Logger(ctx).Warnf("An error occurred when calling to %s: %v", url, err)
			continue
		}

		body, err := io.ReadAll(result.Body)
		result.Body.Close()
		if err != nil {
			xcontext.Logger(ctx).Warnf("An error occurred when reading body of %s: %v", url, err)
			continue
		}

		parsed := parseBody(body)
		if parsed == nil {
			xcontext.Logger(ctx).Warnf("An error occurred when parsing body of %s", url)
			continue
		}

		return &Response{Code: result.StatusCode, Header: result.Header, RawBody: body, Body: parsed}, nil
	}

	return nil, errors.New("all endpoints got errors")
}
