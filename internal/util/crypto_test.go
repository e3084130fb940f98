package util

import (
	"strings"
	"testing"
)

func TestGenerateNChar(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"Generate 5 characters", 5, false},
		{"Generate 10 characters", 10, false},
		{"Generate 0 characters", 0, false},
		{"Generate negative characters", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateNChar(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("GenerateNChar() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && len(got) != tt.n {
				t.Errorf("GenerateNChar() got = %v, want length %v", got, tt.n)
			}
		})
	}
}

func TestGenerateLocalMessageID(t *testing.T) {
	a := GenerateLocalMessageID()
	b := GenerateLocalMessageID()

	if !strings.HasPrefix(a, "local_") || len(a) != len("local_")+16 {
		t.Errorf("unexpected local message id %q", a)
	}
	if a == b {
		t.Errorf("expected unique ids, got %q twice", a)
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !ComparePassword(hash, "s3cret-pass") {
		t.Errorf("expected password to match its hash")
	}
	if ComparePassword(hash, "wrong") {
		t.Errorf("expected wrong password to be rejected")
	}
}
