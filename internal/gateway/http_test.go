package gateway_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lelyo-go/internal/core"
	"lelyo-go/internal/gateway"
)

func TestHTTPGateway_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/properties" {
			t.Errorf("request = %s %s, want GET /properties", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]core.Property{{ID: 1, Name: "Villa Azur"}})
	}))
	defer srv.Close()

	g := gateway.NewHTTPGateway(srv.URL, "")
	var props []core.Property
	if err := g.Get("/properties", &props); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(props) != 1 || props[0].Name != "Villa Azur" {
		t.Errorf("props = %+v, want the decoded listing", props)
	}
}

func TestHTTPGateway_BearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	g := gateway.NewHTTPGateway(srv.URL, "secret-token")
	var out map[string]any
	if err := g.Get("/dashboard", &out); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret-token")
	}
}

func TestHTTPGateway_NoTokenNoHeader(t *testing.T) {
	var hadAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	g := gateway.NewHTTPGateway(srv.URL, "")
	var out map[string]any
	if err := g.Get("/dashboard", &out); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hadAuth {
		t.Error("Authorization header sent without a token")
	}
}

func TestHTTPGateway_PostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if body["guest_name"] != "Dupont" {
			t.Errorf("guest_name = %v, want Dupont", body["guest_name"])
		}
		json.NewEncoder(w).Encode(core.Reservation{ID: 9, GuestName: "Dupont"})
	}))
	defer srv.Close()

	g := gateway.NewHTTPGateway(srv.URL, "")
	var created core.Reservation
	err := g.Post("/reservations", map[string]any{"guest_name": "Dupont"}, &created)
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if created.ID != 9 {
		t.Errorf("created.ID = %d, want 9", created.ID)
	}
}

func TestHTTPGateway_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	g := gateway.NewHTTPGateway(srv.URL, "")
	err := g.Delete("/properties/99")

	var rerr *core.RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if rerr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", rerr.Status)
	}
	if rerr.Method != http.MethodDelete || rerr.Path != "/properties/99" {
		t.Errorf("RequestError = %+v, want method and path recorded", rerr)
	}
}

func TestHTTPGateway_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("Content-Type = %q, want multipart/form-data", r.Header.Get("Content-Type"))
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer file.Close()
		if header.Filename != "villa.jpg" {
			t.Errorf("Filename = %q, want villa.jpg", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "jpeg-bytes" {
			t.Errorf("file content = %q, want jpeg-bytes", data)
		}
		json.NewEncoder(w).Encode(core.UploadResult{URL: "/uploads/villa.jpg"})
	}))
	defer srv.Close()

	g := gateway.NewHTTPGateway(srv.URL, "")
	res, err := g.Upload("/upload", "villa.jpg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if res.URL != "/uploads/villa.jpg" {
		t.Errorf("URL = %q, want /uploads/villa.jpg", res.URL)
	}
}

func TestHTTPGateway_TrailingSlashBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks" {
			t.Errorf("path = %q, want /tasks", r.URL.Path)
		}
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	g := gateway.NewHTTPGateway(srv.URL+"/", "")
	var out []core.Task
	if err := g.Get("/tasks", &out); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
}
