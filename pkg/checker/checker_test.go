package checker

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"commsctl/pkg/catalog"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	// Redirect the cache into a throwaway home so runs stay independent
	tempDir, err := os.MkdirTemp("", "commsctl-checker-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	return NewClient()
}

func TestCheckEntryHealthyLinks(t *testing.T) {
	slides := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>mod_mapping slides</title></head><body></body></html>`))
	}))
	defer slides.Close()

	notebook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cells": []}`))
	}))
	defer notebook.Close()

	client := newTestClient(t)

	result := client.CheckEntry(catalog.LectureEntry{
		Order:       1,
		Title:       "Modulation Mapping",
		SlidesURL:   slides.URL,
		NotebookURL: notebook.URL,
	})

	if !result.OK() {
		t.Fatalf("expected healthy result, got %+v", result)
	}
	if result.Slides.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for slides, got %d", result.Slides.StatusCode)
	}
	if result.Slides.PageTitle != "mod_mapping slides" {
		t.Errorf("expected slide page title to be extracted, got %q", result.Slides.PageTitle)
	}
	if result.Notebook.PageTitle != "" {
		t.Errorf("notebook check should not parse a page title, got %q", result.Notebook.PageTitle)
	}
}

func TestCheckEntryBrokenLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t)

	result := client.CheckEntry(catalog.LectureEntry{
		Order:     2,
		Title:     "Pulse Shaping",
		SlidesURL: server.URL,
	})

	if result.OK() {
		t.Fatalf("expected broken result for 404 slides link, got %+v", result)
	}
	if result.Slides.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", result.Slides.StatusCode)
	}
	if result.Notebook != nil {
		t.Errorf("entry has no notebook URL, expected nil notebook status, got %+v", result.Notebook)
	}
}

func TestGetWithRetriesSuccess(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t)

	resp, err := client.getWithRetries(server.URL)
	if err != nil {
		t.Fatalf("expected retry to succeed on 3rd attempt, got error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200 OK, got %d", resp.StatusCode)
	}
	if attempts != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", attempts)
	}
}

func TestGetWithRetriesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t)

	if _, err := client.getWithRetries(server.URL); err == nil {
		t.Fatalf("expected failure after 3 attempts against a 502 server, got nil error")
	}
}

func TestCheckEntryUsesCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`<html><head><title>psd slides</title></head></html>`))
	}))
	defer server.Close()

	client := newTestClient(t)
	entry := catalog.LectureEntry{Order: 3, Title: "PSD Estimation", SlidesURL: server.URL}

	first := client.CheckEntry(entry)
	second := client.CheckEntry(entry)

	if hits != 1 {
		t.Errorf("expected the second check to be served from cache, server saw %d hits", hits)
	}
	if !first.CheckedAt.Equal(second.CheckedAt) {
		t.Errorf("cached result should preserve the original check time")
	}

	// NoCache bypasses the stored result
	client.NoCache = true
	client.CheckEntry(entry)
	if hits != 2 {
		t.Errorf("expected NoCache to reprobe the server, saw %d hits", hits)
	}
}
