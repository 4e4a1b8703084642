package coinfolio

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJwget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/teapot" {
			http.Error(w, "teapot", http.StatusTeapot)
			return
		}
		w.Write([]byte(`{"answer": 42}`))
	}))
	defer srv.Close()

	client := srv.Client()

	var data map[string]float64
	if err := jwget(client, srv.URL+"/ok", &data); err != nil {
		t.Fatalf("jwget: %v", err)
	}
	if data["answer"] != 42 {
		t.Errorf("decoded %v", data)
	}

	err := jwget(client, srv.URL+"/teapot", &data)
	if err == nil {
		t.Fatal("non-200 status did not fail")
	}
	if !strings.Contains(err.Error(), "418") {
		t.Errorf("error = %q, want the status reported", err)
	}

	// The body is closed on every path, so the keep-alive connection can be
	// reused for many requests without exhausting the client.
	for i := 0; i < 20; i++ {
		if err := jwget(client, srv.URL+"/teapot", &data); err == nil {
			t.Fatal("non-200 status did not fail")
		}
	}
}
