package repo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/metadata-tools/rdfsync/pkg/rdf"
)

const (
	contentTypeNTriples     = "application/n-triples"
	contentTypeSPARQLUpdate = "application/sparql-update"
)

// StatusError reports a non-success repository response
type StatusError struct {
	StatusCode int
	URI        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("repository returned %d for %s", e.StatusCode, e.URI)
}

// Client talks to a linked-data repository over HTTP. Resources are fetched
// as N-Triples and patched with SPARQL update expressions.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a repository client with the given request timeout
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP creates a repository client over an existing HTTP client
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// FetchGraph retrieves the resource's RDF representation by URI
func (c *Client) FetchGraph(ctx context.Context, uri string) (*rdf.Graph, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}
	req.Header.Set("Accept", contentTypeNTriples)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", uri, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response for %s: %w", uri, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URI: uri, Body: string(body)}
	}

	triples, err := rdf.ParseNTriples(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph for %s: %w", uri, err)
	}

	graph := rdf.NewGraph()
	for _, t := range triples {
		graph.Add(t)
	}
	return graph, nil
}

// SubmitPatch applies a SPARQL update to the resource as a single
// transactional patch
func (c *Client) SubmitPatch(ctx context.Context, uri, update string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, uri, strings.NewReader(update))
	if err != nil {
		return fmt.Errorf("failed to build patch request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeSPARQLUpdate)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to patch %s: %w", uri, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read patch response for %s: %w", uri, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, URI: uri, Body: string(body)}
	}

	return nil
}
