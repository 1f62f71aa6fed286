package api

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestGetGroups(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/groups" {
			t.Errorf("expected path /groups, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("board_id") != "b1" {
			t.Errorf("expected board_id=b1, got %q", r.URL.Query().Get("board_id"))
		}
		json.NewEncoder(w).Encode([]Group{
			{ID: "g1", Name: "Themes", IdeaIDs: []string{"1", "2"}},
		})
	})
	defer server.Close()

	groups, err := testClient(server).GetGroups("b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "Themes" {
		t.Errorf("unexpected groups: %+v", groups)
	}
}

func TestUpdateGroupCollapse(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/groups/g1" {
			t.Errorf("expected PATCH /groups/g1, got %s %s", r.Method, r.URL.Path)
		}

		var req UpdateGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.IsCollapsed == nil || !*req.IsCollapsed {
			t.Errorf("expected is_collapsed=true, got %+v", req)
		}
		if req.Name != nil {
			t.Error("untouched fields must be omitted")
		}

		json.NewEncoder(w).Encode(Group{ID: "g1", IsCollapsed: true})
	})
	defer server.Close()

	collapsed := true
	group, err := testClient(server).UpdateGroup("g1", UpdateGroupRequest{IsCollapsed: &collapsed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !group.IsCollapsed {
		t.Error("group not collapsed in response")
	}
}

func TestGroupGeometryPatchPaths(t *testing.T) {
	tests := []struct {
		name     string
		call     func(*Client) error
		wantPath string
	}{
		{
			name:     "position",
			call:     func(c *Client) error { return c.UpdateGroupPosition("g1", 5, 6) },
			wantPath: "/groups/g1/position",
		},
		{
			name:     "size",
			call:     func(c *Client) error { return c.UpdateGroupSize("g1", 40, 12) },
			wantPath: "/groups/g1/size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPatch {
					t.Errorf("expected PATCH, got %s", r.Method)
				}
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusOK)
			})
			defer server.Close()

			if err := tt.call(testClient(server)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}

func TestDeleteGroup(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/groups/g1" {
			t.Errorf("expected DELETE /groups/g1, got %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	if err := testClient(server).DeleteGroup("g1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
