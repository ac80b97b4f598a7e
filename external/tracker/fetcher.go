package tracker

import (
	"context"
	"io"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"
)

type fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func (f *fetcher) url(path string, query url.Values) string {
	u := f.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// get reads the body of a successful response. Every failure is reported as a
// NetworkError except a cancelled context.
func (f *fetcher) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := f.url(path, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if nil != err {
		return nil, &NetworkError{URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if nil != err {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.WithFields(log.Fields{"prefix": logPrefix, "url": u, "error": err}).Error("get tracker json")
		return nil, &NetworkError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": u, "status": resp.StatusCode}).Error("get tracker json")
		return nil, &NetworkError{URL: u, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": u, "error": err}).Error("read tracker json response")
		return nil, &NetworkError{URL: u, Err: err}
	}
	return data, nil
}
