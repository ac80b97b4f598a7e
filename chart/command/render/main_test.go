package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestRenderFromSnapshot(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	defer viper.Reset()
	viper.Set("tracker.variant", "locations")
	viper.Set("tracker.base_url", ts.URL)

	dir := t.TempDir()
	out := filepath.Join(dir, "chart.svg")

	var stdout bytes.Buffer
	cmd := newRenderCommand()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--type", "deaths",
		"--country1", "Germany",
		"--out", out,
		"--hover", "2020-02-01",
	})

	assert.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "Germany")
	assert.Contains(t, stdout.String(), "Germany\t2020-02-01\t")
	assert.Contains(t, stdout.String(), "Italy\t2020-02-01\t")
}

func TestRenderUnknownCountry(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	defer viper.Reset()
	viper.Set("tracker.variant", "locations")
	viper.Set("tracker.base_url", ts.URL)

	dir := t.TempDir()

	cmd := newRenderCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--country2", "Atlantis",
		"--out", filepath.Join(dir, "chart.svg"),
	})

	assert.Error(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(dir, "chart.svg"))
	assert.True(t, os.IsNotExist(err))
}

func TestRenderInvalidHover(t *testing.T) {
	defer viper.Reset()

	cmd := newRenderCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--hover", "someday",
	})

	assert.Error(t, cmd.Execute())
}
