package api

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestGetBoards(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/boards" {
			t.Errorf("expected GET /boards, got %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Board{
			{ID: "b1", Name: "Sprint retro"},
			{ID: "b2", Name: "Roadmap"},
		})
	})
	defer server.Close()

	boards, err := testClient(server).GetBoards()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(boards) != 2 || boards[0].Name != "Sprint retro" {
		t.Errorf("unexpected boards: %+v", boards)
	}
}

func TestCreateBoard(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		var req CreateBoardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Name != "Brainstorm" {
			t.Errorf("name = %q, want Brainstorm", req.Name)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Board{ID: "b3", Name: req.Name})
	})
	defer server.Close()

	board, err := testClient(server).CreateBoard(CreateBoardRequest{Name: "Brainstorm"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.ID != "b3" {
		t.Errorf("board ID = %q, want b3", board.ID)
	}
}

func TestDeleteBoard(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/boards/b1" {
			t.Errorf("expected DELETE /boards/b1, got %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	if err := testClient(server).DeleteBoard("b1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
