package store

import (
	"errors"
	"sync"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	s := NewMemoryTeamStore()
	if err := s.Register("A", "https://hooks.example/a", "user-a", "pass-a"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	team, err := s.Lookup("A")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if team.WebhookURL != "https://hooks.example/a" || team.Username != "user-a" {
		t.Errorf("team = %+v", team)
	}
}

func TestLookupMiss(t *testing.T) {
	s := NewMemoryTeamStore()
	if _, err := s.Lookup("B"); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

// 재등록은 기존 엔트리를 통째로 덮어쓴다
func TestRegisterOverwrites(t *testing.T) {
	s := NewMemoryTeamStore()
	if err := s.Register("A", "https://hooks.example/old", "u1", "p1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Register("A", "https://hooks.example/new", "u2", "p2"); err != nil {
		t.Fatal(err)
	}

	team, err := s.Lookup("A")
	if err != nil {
		t.Fatal(err)
	}
	if team.WebhookURL != "https://hooks.example/new" || team.Username != "u2" {
		t.Errorf("team = %+v, want overwritten entry", team)
	}
	if err := s.Authenticate("A", "u1", "p1"); err == nil {
		t.Error("old credentials should no longer authenticate")
	}
	if err := s.Authenticate("A", "u2", "p2"); err != nil {
		t.Errorf("new credentials rejected: %v", err)
	}
}

func TestListSorted(t *testing.T) {
	s := NewMemoryTeamStore()
	for _, id := range []string{"charlie", "alpha", "bravo"} {
		if err := s.Register(id, "https://hooks.example/"+id, "u", "p"); err != nil {
			t.Fatal(err)
		}
	}

	got := s.List()
	want := []string{"alpha", "bravo", "charlie"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAuthenticate(t *testing.T) {
	s := NewMemoryTeamStore()
	if err := s.Register("A", "https://hooks.example/a", "user-a", "pass-a"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		id       string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid", id: "A", username: "user-a", password: "pass-a"},
		{name: "wrong-password", id: "A", username: "user-a", password: "nope", wantErr: true},
		{name: "wrong-username", id: "A", username: "other", password: "pass-a", wantErr: true},
		{name: "unknown-team", id: "Z", username: "user-a", password: "pass-a", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Authenticate(tt.id, tt.username, tt.password)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Authenticate = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// 동시 등록/조회 경쟁 상태에서 맵이 깨지지 않아야 한다 (go test -race 대상)
func TestConcurrentRegisterLookup(t *testing.T) {
	s := NewMemoryTeamStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Register("A", "https://hooks.example/a", "u", "p")
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Lookup("A")
			_ = s.List()
		}()
	}
	wg.Wait()
}
