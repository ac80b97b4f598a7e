package tracker

import (
	"context"
	_ "embed"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-chart/schema"
)

// snapshot is the bundled dataset in the `locations` shape
//
//go:embed fallback/covid_19_snapshot.json
var snapshot []byte

// FileLoader reads a static snapshot in the shape of the configured variant.
// An empty Path reads the bundled snapshot.
type FileLoader struct {
	Path    string
	Variant Variant
}

func (l FileLoader) LoadFallback(ctx context.Context) ([]schema.LocationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if l.Path == "" {
		return decodeLocations(snapshot)
	}

	decode, err := decoderFor(l.Variant)
	if nil != err {
		return nil, err
	}

	data, err := os.ReadFile(l.Path)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "path": l.Path, "error": err}).Error("read fallback dataset")
		return nil, err
	}

	records, err := decode(data)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "path": l.Path, "error": err}).Error("decode fallback dataset")
		return nil, err
	}
	return records, nil
}
