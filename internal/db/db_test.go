package db

import (
	"context"
	"errors"
	"testing"

	"retire-explorer/internal/config"
)

func TestNewPoolRequiresURL(t *testing.T) {
	_, err := NewPool(context.Background(), &config.Config{})
	if !errors.Is(err, ErrDatabaseNotConfigured) {
		t.Fatalf("expected ErrDatabaseNotConfigured, got %v", err)
	}
}

func TestNewPoolRejectsMalformedURL(t *testing.T) {
	_, err := NewPool(context.Background(), &config.Config{DatabaseURL: "postgres://%zz"})
	if err == nil {
		t.Fatalf("expected parse error")
	}
}
