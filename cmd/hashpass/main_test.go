package main

import "testing"

func TestReadPassword_FromArgs(t *testing.T) {
	got, err := readPassword([]string{"correct", "horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "correct horse" {
		t.Errorf("readPassword() = %q, want %q", got, "correct horse")
	}
}
