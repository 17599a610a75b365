package corpus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/assets"
)

const sqlitePrefix = "sqlite:"

// ErrEmpty is returned when a source yields no words.
var ErrEmpty = errors.New("corpus: no words loaded")

type loadOptions struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures Load.
type Option func(*loadOptions)

// WithHTTPClient sets the client used for URL sources.
func WithHTTPClient(c *http.Client) Option {
	return func(o *loadOptions) { o.client = c }
}

// WithFetchTimeout bounds the whole fetch of a URL source.
func WithFetchTimeout(d time.Duration) Option {
	return func(o *loadOptions) { o.timeout = d }
}

// Load reads a corpus from source:
//
//	""                 embedded default list
//	http(s)://...      plain-text list fetched over HTTP
//	sqlite:<path>      table words of a SQLite database, by position
//	anything else      local text file
func Load(ctx context.Context, source string, opts ...Option) (*Corpus, error) {
	o := loadOptions{client: http.DefaultClient, timeout: 20 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		c    *Corpus
		err  error
		kind string
	)
	switch {
	case source == "":
		kind = "embedded"
		c, err = loadEmbedded()
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		kind = "url"
		c, err = fetch(ctx, o, source)
	case strings.HasPrefix(source, sqlitePrefix):
		kind = "sqlite"
		c, err = loadSQLite(ctx, strings.TrimPrefix(source, sqlitePrefix))
	default:
		kind = "file"
		c, err = loadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s corpus: %w", kind, err)
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("load %s corpus %q: %w", kind, source, ErrEmpty)
	}
	log.Debug().Str("source", kind).Int("words", c.Len()).Msg("corpus loaded")
	return c, nil
}

func loadEmbedded() (*Corpus, error) {
	f, err := assets.FS.Open(assets.DefaultWordsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

func loadFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

func fetch(ctx context.Context, o loadOptions, url string) (*Corpus, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	return ReadLines(resp.Body)
}

func loadSQLite(ctx context.Context, path string) (*Corpus, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}
	words, err := ReadDB(ctx, db)
	if err != nil {
		return nil, err
	}
	return FromWords(words), nil
}
