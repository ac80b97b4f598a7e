package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-chart/external/tracker"
)

const snapshotBody = `{"locations":[{"id":0,"country":"US","country_code":"US","province":"","last_updated":"2020-03-06T10:43:21.567185Z","timelines":{"confirmed":{"timeline":{"2020-01-22T00:00:00Z":1}},"deaths":{"timeline":{"2020-01-22T00:00:00Z":0}}}}]}`

func TestSnapshotCrawler(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("timelines"))
		_, _ = w.Write([]byte(snapshotBody))
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	assert.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

	c := newSnapshotCrawler(context.Background(), tracker.Config{
		Variant: tracker.VariantLocations,
		BaseURL: ts.URL,
	}, path)
	assert.NoError(t, c.Run())

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, snapshotBody, string(data))

	records, err := tracker.FileLoader{Path: path, Variant: tracker.VariantLocations}.LoadFallback(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSnapshotCrawlerKeepsPreviousOnFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"locations":[]}`))
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	assert.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

	c := newSnapshotCrawler(context.Background(), tracker.Config{
		Variant: tracker.VariantLocations,
		BaseURL: ts.URL,
	}, path)
	assert.ErrorIs(t, c.Run(), tracker.ErrEmptyDataset)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}
