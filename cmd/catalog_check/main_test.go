package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"retire-explorer/internal/catalog"
	"retire-explorer/internal/domain"
)

func TestCheckDefaultCatalog(t *testing.T) {
	var out bytes.Buffer
	code := check(&out, catalog.Default(), true, zap.NewNop())
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", code, out.String())
	}
	text := out.String()
	if !strings.Contains(text, "consistent") {
		t.Fatalf("expected consistency line\n%s", text)
	}
	if strings.Count(text, "[combo-") != 12 {
		t.Fatalf("expected 12 combination lines\n%s", text)
	}
	if !strings.Contains(text, "==== Averages ====") {
		t.Fatalf("expected averages section\n%s", text)
	}
}

func TestCheckReportsBrokenCatalog(t *testing.T) {
	cat := catalog.Default().WithOptions(domain.DimensionLocation, []domain.Option{
		{ID: "coastal-town", Title: "Coastal Town"},
		{ID: "atlantis", Title: "Atlantis"},
	})
	var out bytes.Buffer
	code := check(&out, cat, true, zap.NewNop())
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	text := out.String()
	if !strings.Contains(text, `location "atlantis" has no base scores`) {
		t.Fatalf("expected missing scores problem\n%s", text)
	}
	if !strings.Contains(text, "curated entries resolved") {
		t.Fatalf("expected unresolved combinations line\n%s", text)
	}
}

type fakeCatalogRepo struct {
	calls     []string
	schemaErr error
	options   map[domain.Dimension][]domain.Option
}

func (f *fakeCatalogRepo) EnsureSchema(_ context.Context) error {
	f.calls = append(f.calls, "schema")
	return f.schemaErr
}

func (f *fakeCatalogRepo) LoadOptions(_ context.Context, dim domain.Dimension) ([]domain.Option, error) {
	f.calls = append(f.calls, "load:"+string(dim))
	return f.options[dim], nil
}

func TestOverlayCatalogFreshDatabase(t *testing.T) {
	repo := &fakeCatalogRepo{}
	cat, err := overlayCatalog(context.Background(), repo, catalog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.calls) != 4 || repo.calls[0] != "schema" {
		t.Fatalf("expected schema before loads, got %v", repo.calls)
	}

	var out bytes.Buffer
	if code := check(&out, cat, true, zap.NewNop()); code != 0 {
		t.Fatalf("expected empty database to report the built-in catalog, got %d\n%s", code, out.String())
	}
}

func TestOverlayCatalogSchemaError(t *testing.T) {
	repo := &fakeCatalogRepo{schemaErr: errors.New("permission denied")}
	if _, err := overlayCatalog(context.Background(), repo, catalog.Default()); err == nil || !strings.Contains(err.Error(), "ensure catalog schema") {
		t.Fatalf("expected wrapped schema error, got %v", err)
	}
	if len(repo.calls) != 1 {
		t.Fatalf("loads must not run after a schema error, got %v", repo.calls)
	}
}
