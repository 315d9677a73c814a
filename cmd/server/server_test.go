package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brokerline/docengine/docs"
	"github.com/brokerline/docengine/intake"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	engine, err := docs.NewDefaultEngine()
	if err != nil {
		t.Fatalf("Failed to build engine: %v", err)
	}
	return NewServer(engine, intake.NewInMemoryStore(), nil)
}

func doRequest(t *testing.T, server *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}

func createIntakeRequest() CreateIntakeRequest {
	isCondo := true
	return CreateIntakeRequest{
		ClientFirstName: "Jordan",
		ClientLastName:  "Lee",
		BrokerName:      "Casey Broker",
		Answers: docs.Answers{
			TransactionType: docs.TransactionPurchaseResale,
			IsCondo:         &isCondo,
			IncomeSources:   []docs.IncomeSource{docs.IncomeEmployed},
		},
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	decodeBody(t, rec, &resp)
	if resp["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %v", resp["status"])
	}
	if size, ok := resp["catalogSize"].(float64); !ok || size == 0 {
		t.Errorf("Expected non-zero catalogSize, got %v", resp["catalogSize"])
	}
}

func TestEvaluateEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/v1/evaluate", docs.Answers{
		TransactionType: docs.TransactionPurchaseResale,
		IncomeSources:   []docs.IncomeSource{docs.IncomeEmployed},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp EvaluateResponse
	decodeBody(t, rec, &resp)
	if len(resp.Tags) == 0 || resp.Tags[0] != "purchase_resale" {
		t.Errorf("Expected purchase_resale tag first, got %v", resp.Tags)
	}
	if len(resp.Documents) == 0 {
		t.Error("Expected a non-empty document list")
	}
	for _, d := range resp.Documents {
		if d.ID == "" || d.Name == "" {
			t.Errorf("Document missing id or name: %+v", d)
		}
	}
}

func TestEvaluateEndpoint_BadBody(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluate", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestListDocumentsEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/documents", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp struct {
		Documents []docs.DocumentRequirement `json:"documents"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Documents) == 0 {
		t.Fatal("Expected the full catalog, got nothing")
	}
}

func TestIntakeLifecycle(t *testing.T) {
	server := newTestServer(t)

	// Create
	rec := doRequest(t, server, http.MethodPost, "/api/v1/intakes", createIntakeRequest())
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created IntakeResponse
	decodeBody(t, rec, &created)
	if created.ID == "" {
		t.Fatal("Expected the created intake to have an id")
	}
	if len(created.RequiredDocs) == 0 {
		t.Fatal("Expected the created intake to snapshot required documents")
	}
	if created.Progress.Required != len(created.RequiredDocs) || created.Progress.Uploaded != 0 {
		t.Errorf("Unexpected initial progress: %+v", created.Progress)
	}

	// Get
	rec = doRequest(t, server, http.MethodGet, "/api/v1/intakes/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var fetched IntakeResponse
	decodeBody(t, rec, &fetched)
	if fetched.ClientFirstName != "Jordan" {
		t.Errorf("Expected client first name to round-trip, got %q", fetched.ClientFirstName)
	}

	// List
	rec = doRequest(t, server, http.MethodGet, "/api/v1/intakes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var listing struct {
		Intakes []IntakeSummary `json:"intakes"`
	}
	decodeBody(t, rec, &listing)
	if len(listing.Intakes) != 1 || listing.Intakes[0].ID != created.ID {
		t.Errorf("Expected listing with the created intake, got %+v", listing.Intakes)
	}

	// Delete
	rec = doRequest(t, server, http.MethodDelete, "/api/v1/intakes/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}
	rec = doRequest(t, server, http.MethodGet, "/api/v1/intakes/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", rec.Code)
	}
}

func TestCreateIntake_MissingName(t *testing.T) {
	server := newTestServer(t)

	req := createIntakeRequest()
	req.ClientFirstName = ""
	rec := doRequest(t, server, http.MethodPost, "/api/v1/intakes", req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestUploadTracking(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/v1/intakes", createIntakeRequest())
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}
	var created IntakeResponse
	decodeBody(t, rec, &created)

	docID := created.RequiredDocs[0].ID
	uploadPath := fmt.Sprintf("/api/v1/intakes/%s/uploads/%s", created.ID, docID)

	// Mark uploaded
	rec = doRequest(t, server, http.MethodPut, uploadPath, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, server, http.MethodGet, "/api/v1/intakes/"+created.ID, nil)
	var fetched IntakeResponse
	decodeBody(t, rec, &fetched)
	if len(fetched.UploadedDocIDs) != 1 || fetched.UploadedDocIDs[0] != docID {
		t.Errorf("Expected uploaded ids [%s], got %v", docID, fetched.UploadedDocIDs)
	}
	if fetched.Progress.Uploaded != 1 {
		t.Errorf("Expected progress 1 uploaded, got %+v", fetched.Progress)
	}

	// A document outside the snapshot is a client error
	rec = doRequest(t, server, http.MethodPut,
		fmt.Sprintf("/api/v1/intakes/%s/uploads/doc_not_in_snapshot", created.ID), nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a non-required document, got %d", rec.Code)
	}

	// An unknown intake is 404
	rec = doRequest(t, server, http.MethodPut,
		fmt.Sprintf("/api/v1/intakes/missing/uploads/%s", docID), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for an unknown intake, got %d", rec.Code)
	}

	// Clear upload
	rec = doRequest(t, server, http.MethodDelete, uploadPath, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}

	rec = doRequest(t, server, http.MethodGet, "/api/v1/intakes/"+created.ID, nil)
	decodeBody(t, rec, &fetched)
	if len(fetched.UploadedDocIDs) != 0 {
		t.Errorf("Expected no uploaded ids after clear, got %v", fetched.UploadedDocIDs)
	}
}
