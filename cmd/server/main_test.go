package main

import "testing"

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":2222", "2222"},
		{"0.0.0.0:22", "22"},
		{"[::1]:2200", "2200"},
		{"localhost", "localhost"},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := portOf(tt.addr); got != tt.want {
				t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}
