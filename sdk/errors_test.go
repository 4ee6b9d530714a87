package sdk

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewAPIErrorWrapsUnauthorized(t *testing.T) {
	err := NewAPIError(http.StatusUnauthorized, "please log in", nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("401 should match ErrUnauthorized")
	}
	if errors.Is(NewAPIError(http.StatusForbidden, "", nil), ErrUnauthorized) {
		t.Fatalf("403 must not match ErrUnauthorized")
	}
}

func TestUserMessage(t *testing.T) {
	withMsg := NewAPIError(422, "name already taken", nil)
	if got := withMsg.UserMessage(); got != "name already taken" {
		t.Fatalf("got %q", got)
	}
	blank := NewAPIError(500, "", nil)
	if got := blank.UserMessage(); got != "something went wrong, please try again" {
		t.Fatalf("got %q", got)
	}
}
