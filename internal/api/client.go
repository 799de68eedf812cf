// ABOUTME: Authenticated HTTP client for the showcase backend
// ABOUTME: Injects the opaque init-data header and surfaces error bodies verbatim

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// InitDataHeader carries the opaque host-issued credential on authenticated
// calls. Its absence means "unauthenticated"; an empty value is never sent.
const InitDataHeader = "X-Init-Data"

// idempotencyHeader lets the backend deduplicate a resubmitted lead.
const idempotencyHeader = "X-Idempotency-Key"

// RequestError is a non-2xx response. Error() is the raw response body text,
// which the UI shows to the user without further parsing.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// DecodeError is a 2xx response whose body did not match the endpoint's
// schema. Kept distinct from RequestError so shape mismatches are caught at
// the API boundary instead of surfacing as type errors inside rendering.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s response: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Client talks to the showcase backend. InitData, when non-empty, is attached
// verbatim to authenticated calls. The zero http.Client has no timeout: a
// hung request hangs the caller, which matches the UI's loading semantics.
type Client struct {
	base     string
	initData string
	httpc    *http.Client
}

// New creates a Client for the given backend base URL and opaque credential.
// An empty initData puts the client in unauthenticated browser mode.
func New(baseURL, initData string) *Client {
	return &Client{
		base:     strings.TrimRight(baseURL, "/"),
		initData: initData,
		httpc:    &http.Client{},
	}
}

// Get performs an unauthenticated JSON GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, false, nil)
}

// Do performs an authenticated JSON request. The init-data header is attached
// only when a credential exists; a JSON content type is set whenever a body
// is sent. Authorization is entirely the backend's call.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, method, path, body, out, true, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, auth bool, extra http.Header) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth && c.initData != "" {
		req.Header.Set(InitDataHeader, c.initData)
	}
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &DecodeError{Path: path, Err: err}
		}
	}
	return nil
}

// FAQ fetches the question/answer content list.
func (c *Client) FAQ(ctx context.Context) ([]FAQItem, error) {
	var items []FAQItem
	if err := c.Get(ctx, "/api/content/faq", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Documents fetches the document content list.
func (c *Client) Documents(ctx context.Context) ([]Document, error) {
	var items []Document
	if err := c.Get(ctx, "/api/content/documents", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Projects fetches the portfolio content list.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var items []Project
	if err := c.Get(ctx, "/api/content/projects", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateLead submits a lead. The discriminator is forced to client_request
// regardless of the draft's value, and an idempotency key accompanies every
// submission so an accidental resend cannot create a duplicate.
func (c *Client) CreateLead(ctx context.Context, draft LeadDraft) (*Lead, error) {
	draft.LeadType = LeadTypeClientRequest

	extra := http.Header{}
	extra.Set(idempotencyHeader, uuid.NewString())

	var lead Lead
	if err := c.do(ctx, http.MethodPost, "/api/leads", draft, &lead, true, extra); err != nil {
		return nil, err
	}
	return &lead, nil
}

// AdminLeads fetches the lead collection, newest first, capped at limit.
// Requires an elevated identity; the backend answers 403 otherwise.
func (c *Client) AdminLeads(ctx context.Context, limit int) ([]Lead, error) {
	var leads []Lead
	path := fmt.Sprintf("/api/admin/leads?limit=%d", limit)
	if err := c.Do(ctx, http.MethodGet, path, nil, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// UpdateLeadStatus sends a partial status update for one lead. The response
// body is decoded only to confirm shape; callers refetch the collection
// rather than patching local state.
func (c *Client) UpdateLeadStatus(ctx context.Context, id int64, status string) (*Lead, error) {
	var lead Lead
	path := fmt.Sprintf("/api/admin/leads/%d", id)
	if err := c.Do(ctx, http.MethodPatch, path, statusUpdate{Status: status}, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// ExportLeadsCSV fetches the CSV export. The body is binary, so this path
// bypasses JSON decoding while keeping the same header convention and error
// contract as the JSON operations.
func (c *Client) ExportLeadsCSV(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/admin/export/leads.csv", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.initData != "" {
		req.Header.Set(InitDataHeader, c.initData)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Status: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
