package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/d0sboots/maze-project/pkg/cache"
	"github.com/d0sboots/maze-project/pkg/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := newLogger(io.Discard, log.ErrorLevel)
	srv := newServer(logger, cache.NewNullCache(), cache.NewDefaultKeyer(), store.NewMemoryStore(), time.Minute)
	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRenderEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/maze?width=6&height=4&weave=0.2&seed=http-test")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := resp.Header.Get("X-Maze-Seed"); got != "http-test" {
		t.Errorf("X-Maze-Seed = %q, want the requested seed", got)
	}

	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	if len(lines) != 8 {
		t.Errorf("text render has %d lines, want 8", len(lines))
	}
}

func TestRenderEndpointRandomSeed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/maze?width=4&height=4")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-Maze-Seed") == "" {
		t.Error("server should report the generated seed")
	}
}

func TestRenderEndpointValidation(t *testing.T) {
	ts := newTestServer(t)

	for _, query := range []string{
		"width=0",
		"width=abc",
		"weave=1.5",
		"format=gif",
		"cell-width=x",
	} {
		resp, err := http.Get(ts.URL + "/maze?" + query)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("GET /maze?%s status = %d, want 400", query, resp.StatusCode)
		}
	}
}

func TestStoredMazeLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// Create
	body := bytes.NewBufferString(`{"width":5,"height":4,"weave_fraction":0.2,"seed":"lifecycle"}`)
	resp, err := http.Post(ts.URL+"/mazes", "application/json", body)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var rec store.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if rec.Seed != "lifecycle" || len(rec.Cells) != 20 {
		t.Errorf("unexpected record: seed=%q cells=%d", rec.Seed, len(rec.Cells))
	}

	// List
	resp, err = http.Get(ts.URL + "/mazes")
	if err != nil {
		t.Fatal(err)
	}
	var list []store.Record
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(list) != 1 || list[0].ID != rec.ID {
		t.Errorf("list = %d records", len(list))
	}

	// Fetch
	resp, err = http.Get(ts.URL + "/mazes/" + rec.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("get status = %d, want 200", resp.StatusCode)
	}

	// Render stored
	resp, err = http.Get(ts.URL + "/mazes/" + rec.ID.String() + "/render?format=dot")
	if err != nil {
		t.Fatal(err)
	}
	dot, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("render status = %d, want 200", resp.StatusCode)
	}
	if !strings.HasPrefix(string(dot), "graph maze {") {
		t.Error("stored render should produce DOT output")
	}

	// Delete
	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/mazes/"+rec.ID.String(), nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", resp.StatusCode)
	}

	// Gone
	resp, err = http.Get(ts.URL + "/mazes/" + rec.ID.String())
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestStoredMazeBadID(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/mazes/not-a-uuid")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
