package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "s9", "crossplay", 5*time.Second)
}

func TestSearchRanked_DecodesResponse(t *testing.T) {
	var gotPath, gotName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotName = r.URL.Query().Get("name")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":1,"data":[{"rank":42,"name":"sangwoo","league":"Diamond 1","rankScore":31337,"change":-5,"clubTag":"FIN"}]}`))
	}))
	defer server.Close()

	response, err := newTestClient(server.URL).SearchRanked("sangwoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1/leaderboard/s9/crossplay" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotName != "sangwoo" {
		t.Fatalf("unexpected name filter: %q", gotName)
	}
	if response.Count != 1 || len(response.Data) != 1 {
		t.Fatalf("unexpected response shape: %+v", response)
	}

	player := response.Data[0]
	if player.Rank != 42 || player.RankScore != 31337 || player.Change != -5 {
		t.Fatalf("unexpected player values: %+v", player)
	}
	if player.League != "Diamond 1" || player.ClubTag != "FIN" {
		t.Fatalf("unexpected player strings: %+v", player)
	}
}

func TestSearchWorldTour_UsesWorldTourSegment(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"count":1,"data":[{"rank":7,"name":"sangwoo","cashouts":2500000}]}`))
	}))
	defer server.Close()

	response, err := newTestClient(server.URL).SearchWorldTour("sangwoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1/leaderboard/s9worldtour/crossplay" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if response.Data[0].Cashouts != 2500000 {
		t.Fatalf("unexpected cashouts: %d", response.Data[0].Cashouts)
	}
}

func TestSearchRanked_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":0,"data":[]}`))
	}))
	defer server.Close()

	response, err := newTestClient(server.URL).SearchRanked("nobody")
	if err != nil {
		t.Fatalf("count 0 is not an error, got: %v", err)
	}
	if response.Count != 0 || len(response.Data) != 0 {
		t.Fatalf("expected empty response, got %+v", response)
	}
}

func TestSearchRanked_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).SearchRanked("sangwoo"); err == nil {
		t.Fatal("expected error for 500 status")
	} else if !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status in error, got: %v", err)
	}
}

func TestSearchRanked_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	if _, err := newTestClient(server.URL).SearchRanked("sangwoo"); err == nil {
		t.Fatal("expected error for refused connection")
	}
}
