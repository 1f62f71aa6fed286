package api

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreateTag(t *testing.T) {
	tests := []struct {
		name       string
		req        CreateTagRequest
		statusCode int
		wantErr    bool
	}{
		{
			name:       "successful create",
			req:        CreateTagRequest{Name: "ux", Color: "#88CCEE"},
			statusCode: http.StatusCreated,
		},
		{
			name:       "duplicate name",
			req:        CreateTagRequest{Name: "UX"},
			statusCode: http.StatusConflict,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/tags" {
					t.Errorf("expected POST /tags, got %s %s", r.Method, r.URL.Path)
				}
				w.WriteHeader(tt.statusCode)
				if tt.statusCode < 400 {
					json.NewEncoder(w).Encode(Tag{ID: "t1", Name: tt.req.Name, Color: tt.req.Color})
				}
			})
			defer server.Close()

			tag, err := testClient(server).CreateTag(tt.req)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if apiErr, ok := IsAPIError(errUnwrapAll(err)); !ok || !apiErr.IsConflict() {
					t.Errorf("expected conflict APIError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tag.Name != tt.req.Name {
				t.Errorf("tag name = %q, want %q", tag.Name, tt.req.Name)
			}
		})
	}
}

// errUnwrapAll walks to the innermost error.
func errUnwrapAll(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		inner := u.Unwrap()
		if inner == nil {
			return err
		}
		err = inner
	}
}

func TestGetAndDeleteTags(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/tags":
			json.NewEncoder(w).Encode([]Tag{{ID: "t1", Name: "ux"}})
		case r.Method == http.MethodDelete && r.URL.Path == "/tags/t1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})
	defer server.Close()

	client := testClient(server)

	tags, err := client.GetTags()
	if err != nil {
		t.Fatalf("GetTags: %v", err)
	}
	if len(tags) != 1 || tags[0].Name != "ux" {
		t.Errorf("unexpected tags: %+v", tags)
	}

	if err := client.DeleteTag("t1"); err != nil {
		t.Fatalf("DeleteTag: %v", err)
	}
}
