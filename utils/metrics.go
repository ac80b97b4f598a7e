package utils

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

// NewMetricsScope returns a root scope reporting into the log every interval.
// A non-positive interval reports only when the scope is closed.
func NewMetricsScope(prefix string, interval time.Duration) (tally.Scope, io.Closer) {
	return tally.NewRootScope(tally.ScopeOptions{
		Prefix:   prefix,
		Reporter: NewLogReporter(log.WithField("prefix", "metrics")),
	}, interval)
}

// LogReporter writes reported metrics as debug log lines
type LogReporter struct {
	log *log.Entry
}

func NewLogReporter(entry *log.Entry) *LogReporter {
	return &LogReporter{log: entry}
}

func (r *LogReporter) Capabilities() tally.Capabilities {
	return r
}

func (r *LogReporter) Reporting() bool {
	return true
}

func (r *LogReporter) Tagging() bool {
	return true
}

func (r *LogReporter) Flush() {}

func (r *LogReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.entry(name, tags).WithField("counter", value).Debug("report metric")
}

func (r *LogReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.entry(name, tags).WithField("gauge", value).Debug("report metric")
}

func (r *LogReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.entry(name, tags).WithField("timer", interval).Debug("report metric")
}

func (r *LogReporter) ReportHistogramValueSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound, bucketUpperBound float64,
	samples int64,
) {
	r.entry(name, tags).WithFields(log.Fields{
		"lower":   bucketLowerBound,
		"upper":   bucketUpperBound,
		"samples": samples,
	}).Debug("report metric")
}

func (r *LogReporter) ReportHistogramDurationSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound, bucketUpperBound time.Duration,
	samples int64,
) {
	r.entry(name, tags).WithFields(log.Fields{
		"lower":   bucketLowerBound,
		"upper":   bucketUpperBound,
		"samples": samples,
	}).Debug("report metric")
}

func (r *LogReporter) entry(name string, tags map[string]string) *log.Entry {
	e := r.log.WithField("metric", name)
	for k, v := range tags {
		e = e.WithField("tag_"+k, v)
	}
	return e
}
