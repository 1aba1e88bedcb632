// Package catalog fetches the item catalog (item id -> display name) from
// Riot's Data Dragon CDN.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the Data Dragon root.
	DefaultBaseURL = "https://ddragon.leagueoflegends.com"
	// DefaultLocale is the language the item names are fetched in.
	DefaultLocale = "en_US"
	// LatestVersion asks Fetch to resolve the newest published patch.
	LatestVersion = "latest"
)

// ErrUnavailable wraps every failure to produce a catalog. Callers are
// expected to carry on with raw item identifiers.
var ErrUnavailable = errors.New("item catalog unavailable")

// Catalog is an immutable item id -> name mapping for one patch.
type Catalog struct {
	version string
	names   map[int]string
}

// New builds a catalog from an existing mapping. The map is copied.
func New(version string, names map[int]string) *Catalog {
	c := &Catalog{version: version, names: make(map[int]string, len(names))}
	for id, n := range names {
		c.names[id] = n
	}
	return c
}

// Name returns the display name for id. A nil catalog knows no items.
func (c *Catalog) Name(id int) (string, bool) {
	if c == nil {
		return "", false
	}
	n, ok := c.names[id]
	return n, ok
}

// Version returns the patch the catalog was built from.
func (c *Catalog) Version() string {
	if c == nil {
		return ""
	}
	return c.version
}

// Len returns the number of known items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Client downloads catalogs from Data Dragon.
type Client struct {
	baseURL string
	locale  string
	http    *http.Client
}

// NewClient returns a client for baseURL; an empty baseURL means Data Dragon.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		locale:  DefaultLocale,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// LatestVersion returns the newest patch listed by versions.json.
func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := c.getJSON(ctx, c.baseURL+"/api/versions.json", &versions); err != nil {
		return "", fmt.Errorf("%w: fetch versions: %w", ErrUnavailable, err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("%w: no versions available", ErrUnavailable)
	}
	return versions[0], nil
}

// itemFile is the subset of item.json the catalog needs.
type itemFile struct {
	Data map[string]struct {
		Name string `json:"name"`
	} `json:"data"`
}

// Fetch downloads the item catalog for version, resolving LatestVersion
// (or an empty string) through versions.json first.
func (c *Client) Fetch(ctx context.Context, version string) (*Catalog, error) {
	if version == "" || version == LatestVersion {
		v, err := c.LatestVersion(ctx)
		if err != nil {
			return nil, err
		}
		version = v
	}

	url := fmt.Sprintf("%s/cdn/%s/data/%s/item.json", c.baseURL, version, c.locale)
	var file itemFile
	if err := c.getJSON(ctx, url, &file); err != nil {
		return nil, fmt.Errorf("%w: fetch items %s: %w", ErrUnavailable, version, err)
	}

	cat := &Catalog{version: version, names: make(map[int]string, len(file.Data))}
	for key, item := range file.Data {
		id, err := strconv.Atoi(key)
		if err != nil || id <= 0 {
			log.Debug().Str("key", key).Msg("skipping non-numeric item key")
			continue
		}
		cat.names[id] = item.Name
	}
	log.Debug().Str("version", version).Int("items", cat.Len()).Msg("item catalog loaded")
	return cat, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
