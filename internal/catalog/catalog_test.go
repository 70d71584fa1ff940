// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cats := Default()
	if len(cats) != 20 {
		t.Fatalf("Default() returned %d categories, want 20", len(cats))
	}

	seen := make(map[string]bool, len(cats))
	for _, c := range cats {
		if c.ID == "" || c.Title == "" || c.Description == "" {
			t.Errorf("category %q has empty fields", c.ID)
		}
		if seen[c.ID] {
			t.Errorf("duplicate category id %q", c.ID)
		}
		seen[c.ID] = true
	}

	if cats[0].Title != "backend" {
		t.Errorf("first category = %q, want backend", cats[0].Title)
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	t.Parallel()

	a := Default()
	a[0].Title = "mutated"
	b := Default()
	if b[0].Title == "mutated" {
		t.Error("Default() shares backing storage between calls")
	}
}

func TestCategoryText(t *testing.T) {
	t.Parallel()

	c := Category{Title: "backend", Description: "Server-side, APIs"}
	if got := c.Text(); got != "backend Server-side, APIs" {
		t.Errorf("Text() = %q", got)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := []byte(`
categories:
  - id: "100"
    title: gaming
    description: Games, engines, graphics
  - id: "101"
    title: fintech
    description: Payments, banking, ledgers
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	cats, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("Load() returned %d categories, want 2", len(cats))
	}
	if cats[0].ID != "100" || cats[0].Title != "gaming" {
		t.Errorf("first category = %+v", cats[0])
	}
	if cats[1].Description != "Payments, banking, ledgers" {
		t.Errorf("second description = %q", cats[1].Description)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"empty catalog", "categories: []\n"},
		{"missing title", "categories:\n  - id: \"1\"\n    description: x\n"},
		{"missing id", "categories:\n  - title: x\n    description: y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			path := filepath.Join(dir, "catalog.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("failed to write catalog file: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load("/nonexistent/catalog.yaml"); err == nil {
		t.Error("Load() succeeded for missing file, want error")
	}
}
