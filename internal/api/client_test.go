package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientSchemeValidation(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		opts    []Option
		wantErr error
	}{
		{"https anywhere", "https://unquote.example.com", nil, nil},
		{"http localhost", "http://localhost:3000", nil, nil},
		{"http loopback", "http://127.0.0.1:3000", nil, nil},
		{"http remote refused", "http://unquote.example.com", nil, ErrInsecureURL},
		{"http remote with insecure", "http://unquote.example.com", []Option{WithInsecure(true)}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClient(tc.url, tc.opts...)
			if tc.wantErr == nil && err != nil {
				t.Errorf("NewClient(%q) error: %v", tc.url, err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("NewClient(%q) error = %v, want %v", tc.url, err, tc.wantErr)
			}
		})
	}

	if _, err := NewClient("ftp://example.com"); err == nil {
		t.Error("NewClient accepted an ftp URL")
	}
}

func TestTodayPuzzle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game/today" {
			t.Errorf("path = %q, want /game/today", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Puzzle{
			ID:            "AbCd1234",
			Date:          "2026-02-01",
			EncryptedText: "XMT KTQS",
			Author:        "Anon",
			Difficulty:    42,
		})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, WithInsecure(true))
	if err != nil {
		t.Fatal(err)
	}

	p, err := c.TodayPuzzle(t.Context())
	if err != nil {
		t.Fatalf("TodayPuzzle() error: %v", err)
	}
	if p.ID != "AbCd1234" || p.EncryptedText != "XMT KTQS" {
		t.Errorf("puzzle = %+v", p)
	}
}

func TestCheckSolutionSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game/AbCd1234/check" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req CheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Solution != "HELLO" || req.ClaimCode != "TIGER-MAPLE-7492" || req.CompletionTime != 90 {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(CheckResult{Correct: true, AlreadyRecorded: true})
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, WithInsecure(true))
	res, err := c.CheckSolution(t.Context(), "AbCd1234", CheckRequest{
		Solution:       "HELLO",
		ClaimCode:      "TIGER-MAPLE-7492",
		CompletionTime: 90,
	})
	if err != nil {
		t.Fatalf("CheckSolution() error: %v", err)
	}
	if !res.Correct || !res.AlreadyRecorded {
		t.Errorf("result = %+v", res)
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorBody{Error: "no such game", Code: "not_found"})
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, WithInsecure(true))
	_, err := c.PuzzleFor(t.Context(), "nope")
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.StatusCode != 404 || apiErr.Message != "no such game" || apiErr.Code != "not_found" {
		t.Errorf("APIError = %+v", apiErr)
	}
	if got := apiErr.Error(); got != "server returned 404: no such game" {
		t.Errorf("Error() = %q", got)
	}
}

func TestAPIErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, WithInsecure(true))
	_, err := c.RandomPuzzle(t.Context())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Errorf("Message = %q, want status text fallback", apiErr.Message)
	}
}

func TestRegisterPlayer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/players" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(RegisterResult{ClaimCode: "OTTER-BIRCH-0001"})
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, WithInsecure(true))
	code, err := c.RegisterPlayer(t.Context())
	if err != nil {
		t.Fatalf("RegisterPlayer() error: %v", err)
	}
	if code != "OTTER-BIRCH-0001" {
		t.Errorf("claim code = %q", code)
	}
}

func TestStatsEscapesClaimCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players/TIGER-MAPLE-7492/stats" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(PlayerStats{Solved: 7, MedianSeconds: 120, CurrentStreak: 3})
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, WithInsecure(true))
	s, err := c.Stats(t.Context(), "TIGER-MAPLE-7492")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if s.Solved != 7 || s.CurrentStreak != 3 {
		t.Errorf("stats = %+v", s)
	}
}
