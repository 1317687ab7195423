package geodata

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

const (
	logPrefix      = "geodata"
	defaultURL     = "https://disease.sh/v3/covid-19/countries"
	defaultTimeout = 10 * time.Second
)

var errBadStatus = fmt.Errorf("classifier returned non-2xx status")

// Classifier - batch country name to continent resolution. Called once per
// de-duplicated country set, never per row. A name the classifier does not
// know is simply absent from the returned map; callers apply their own
// fallback bucket.
type Classifier interface {
	Continents(ctx context.Context, names []string) (map[string]string, error)
}

type classifier struct {
	url        string
	httpClient *http.Client
}

// countryInfo - the classifier's per-country payload; only the fields the
// enricher needs are decoded.
type countryInfo struct {
	Country   string `json:"country"`
	Continent string `json:"continent"`
}

func (c *classifier) Continents(ctx context.Context, names []string) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errBadStatus
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	var catalogue []countryInfo
	if err := json.Unmarshal(data, &catalogue); err != nil {
		return nil, err
	}

	byName := make(map[string]string, len(catalogue))
	for _, info := range catalogue {
		if info.Country == "" || info.Continent == "" {
			continue
		}
		byName[strings.ToLower(info.Country)] = info.Continent
	}

	resolved := make(map[string]string, len(names))
	for _, name := range names {
		if continent, ok := byName[strings.ToLower(name)]; ok {
			resolved[name] = continent
		}
	}
	return resolved, nil
}

// New - continent classifier against a disease.sh compatible endpoint.
func New(url string, httpClient *http.Client) Classifier {
	if url == "" {
		url = defaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &classifier{
		url:        url,
		httpClient: httpClient,
	}
}
