// ABOUTME: Tests for the authenticated showcase API client
// ABOUTME: Verifies header injection, error body propagation, and payload shapes

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_DecodesAndOmitsInitHeader(t *testing.T) {
	var gotHeader []string
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader, present = r.Header[http.CanonicalHeaderKey(InitDataHeader)]
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}]`)
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-token")
	items, err := c.FAQ(context.Background())
	require.NoError(t, err)

	// Content fetches are unauthenticated even when a token exists
	assert.False(t, present, "unauthenticated GET must not carry the init-data header, got %v", gotHeader)
	require.Len(t, items, 2)
	assert.Equal(t, "Q1", items[0].Question)
	assert.Equal(t, "A2", items[1].Answer)
}

func TestDo_AttachesExactToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(InitDataHeader)
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL, "query_id=abc&user=42")
	_, err := c.AdminLeads(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "query_id=abc&user=42", got, "token must be forwarded verbatim")
}

func TestDo_NoTokenMeansNoHeader(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header[http.CanonicalHeaderKey(InitDataHeader)]
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.AdminLeads(context.Background(), 10)
	require.NoError(t, err)

	// Omission must not be disguised as a valid empty token
	assert.False(t, present)
}

func TestDo_NonSuccessSurfacesBodyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, "forbidden")
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.AdminLeads(context.Background(), 10)
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusForbidden, reqErr.Status)
	assert.Equal(t, "forbidden", err.Error())
}

func TestDo_EmptyErrorBodyFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	err := c.Get(context.Background(), "/api/content/faq", &[]FAQItem{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestDo_MalformedBodyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"not":"an array"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.FAQ(context.Background())
	require.Error(t, err)

	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr), "shape mismatch must be a DecodeError, got %v", err)
	assert.Equal(t, "/api/content/faq", decErr.Path)
}

func TestCreateLead_PayloadShape(t *testing.T) {
	var gotBody map[string]any
	var gotContentType, gotIdem string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/leads", r.URL.Path)
		gotContentType = r.Header.Get("Content-Type")
		gotIdem = r.Header.Get("X-Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"id":7,"lead_type":"client_request","status":"new"}`)
	}))
	defer srv.Close()

	phone := "+1234"
	desc := "leak"
	c := New(srv.URL, "tok")
	lead, err := c.CreateLead(context.Background(), LeadDraft{Phone: &phone, Description: &desc})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotIdem)

	// Empty fields are explicit nulls, never empty strings
	assert.Equal(t, "client_request", gotBody["lead_type"])
	assert.Equal(t, "+1234", gotBody["phone"])
	assert.Equal(t, "leak", gotBody["description"])
	val, ok := gotBody["name"]
	assert.True(t, ok, "name must be present in the payload")
	assert.Nil(t, val, "empty name must marshal as null")

	assert.Equal(t, int64(7), lead.ID)
	assert.Equal(t, StatusNew, lead.Status)
}

func TestCreateLead_ForcesDiscriminator(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"id":1,"lead_type":"client_request","status":"new"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.CreateLead(context.Background(), LeadDraft{LeadType: "something_else"})
	require.NoError(t, err)

	assert.Equal(t, "client_request", gotBody["lead_type"])
}

func TestAdminLeads_LimitQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `[{"id":42,"lead_type":"client_request","status":"done"}]`)
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	leads, err := c.AdminLeads(context.Background(), 200)
	require.NoError(t, err)

	assert.Equal(t, "limit=200", gotQuery)
	require.Len(t, leads, 1)
	assert.Equal(t, int64(42), leads[0].ID)
	assert.Nil(t, leads[0].Name)
}

func TestUpdateLeadStatus(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody statusUpdate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"id":42,"lead_type":"client_request","status":"done"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	lead, err := c.UpdateLeadStatus(context.Background(), 42, "done")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/admin/leads/42", gotPath)
	assert.Equal(t, "done", gotBody.Status)
	assert.Equal(t, StatusDone, lead.Status)
}

func TestExportLeadsCSV_Success(t *testing.T) {
	csv := "id,status\n1,new\n"
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/export/leads.csv", r.URL.Path)
		gotToken = r.Header.Get(InitDataHeader)
		w.Header().Set("Content-Type", "text/csv")
		io.WriteString(w, csv)
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	data, err := c.ExportLeadsCSV(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tok", gotToken)
	assert.Equal(t, []byte(csv), data, "binary body must round-trip verbatim")
}

func TestExportLeadsCSV_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, "not an admin")
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.ExportLeadsCSV(context.Background())
	require.Error(t, err)
	assert.Equal(t, "not an admin", err.Error())
}

func TestDo_TransportFailure(t *testing.T) {
	// Dial a server that is already closed
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, "")
	err := c.Get(context.Background(), "/api/content/faq", &[]FAQItem{})
	require.Error(t, err)

	var reqErr *RequestError
	assert.False(t, errors.As(err, &reqErr), "transport failure is not an HTTP-status error")
}
