package middleware

import (
	"context"
	"testing"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"abc.def.ghi", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := bearerToken(tt.header)
		if got != tt.want || ok != tt.ok {
			t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWithUser(t *testing.T) {
	ctx := WithUser(context.Background(), "u1", "a@flat.test")

	if got := GetUserID(ctx); got != "u1" {
		t.Errorf("GetUserID = %q, want u1", got)
	}
	if got := GetEmail(ctx); got != "a@flat.test" {
		t.Errorf("GetEmail = %q, want a@flat.test", got)
	}
	if got := GetUserID(context.Background()); got != "" {
		t.Errorf("GetUserID on empty context = %q", got)
	}
}
