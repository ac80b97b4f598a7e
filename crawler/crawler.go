package main

import (
	"context"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-chart/external/tracker"
)

// snapshotCrawler refreshes the static fallback dataset from the tracker
type snapshotCrawler struct {
	ctx    context.Context
	config tracker.Config
	path   string
}

func (c snapshotCrawler) Run() error {
	data, count, err := tracker.FetchSnapshot(c.ctx, c.config)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("fetch snapshot from tracker")
		return err
	}

	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"locations": count,
		"bytes":     len(data),
	}).Debug("snapshot from tracker")

	// replace the previous snapshot only after the new one is complete
	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".snapshot-*.json")
	if nil != err {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); nil != err {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); nil != err {
		return err
	}

	if err := os.Rename(tmp.Name(), c.path); nil != err {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"path":      c.path,
		"locations": count,
	}).Info("snapshot updated")
	return nil
}

// newSnapshotCrawler - new job refreshing the fallback snapshot at path
func newSnapshotCrawler(ctx context.Context, config tracker.Config, path string) Cron {
	return &snapshotCrawler{
		ctx:    ctx,
		config: config,
		path:   path,
	}
}
