package api

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreateConnection(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/connections" {
			t.Errorf("expected POST /connections, got %s %s", r.Method, r.URL.Path)
		}

		var req CreateConnectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.SourceID != "a" || req.TargetID != "b" || req.Type != ConnectionDependsOn {
			t.Errorf("unexpected request: %+v", req)
		}

		json.NewEncoder(w).Encode(Connection{ID: "c1", SourceID: "a", TargetID: "b", Type: req.Type})
	})
	defer server.Close()

	conn, err := testClient(server).CreateConnection(CreateConnectionRequest{
		BoardID:  "b1",
		SourceID: "a",
		TargetID: "b",
		Type:     ConnectionDependsOn,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conn.ID != "c1" {
		t.Errorf("connection ID = %q, want c1", conn.ID)
	}
}

func TestGetConnectionsScopedToBoard(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("board_id") != "b9" {
			t.Errorf("expected board_id=b9 in query")
		}
		json.NewEncoder(w).Encode([]Connection{
			{ID: "c1", SourceID: "1", TargetID: "2", Type: ConnectionRelates},
			{ID: "c2", SourceID: "2", TargetID: "3", Type: ConnectionContradicts},
		})
	})
	defer server.Close()

	conns, err := testClient(server).GetConnections("b9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conns) != 2 {
		t.Errorf("got %d connections, want 2", len(conns))
	}
}

func TestDeleteConnection(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/connections/c1" {
			t.Errorf("expected DELETE /connections/c1, got %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	if err := testClient(server).DeleteConnection("c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
