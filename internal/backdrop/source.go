// Package backdrop streams background images behind the game field.
//
// A single worker goroutine lists and fetches images from a Source,
// converts them into terminal-sized frames and hands them to the tick
// loop through a bounded channel. The tick loop only ever does
// non-blocking receives, so a slow or failing source never stalls play.
package backdrop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/skyraid/internal/config"
)

// ImageRef identifies one candidate image in a listing.
type ImageRef struct {
	ID       string // de-duplication key
	URL      string // location passed back to Fetch
	Category string
}

// Source lists and fetches backdrop images.
// Both calls must honour ctx cancellation.
type Source interface {
	List(ctx context.Context, category string) ([]ImageRef, error)
	Fetch(ctx context.Context, ref ImageRef) ([]byte, error)
}

// ErrorKind classifies fetch failures so the worker can pick a backoff.
type ErrorKind int

const (
	KindTransient ErrorKind = iota
	KindRateLimited
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindMalformed:
		return "malformed"
	default:
		return "transient"
	}
}

// FetchError is returned by sources and the decoder.
type FetchError struct {
	Kind ErrorKind
	Op   string // "list", "fetch" or "decode"
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("backdrop: %s (%s): %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("backdrop: %s %s (%s): %v", e.Op, e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err. Unclassified errors count as transient.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindTransient
}

var imageExts = []string{".jpg", ".jpeg", ".png"}

func hasImageExt(name string, exts []string) bool {
	name = strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// NewSource picks the offline directory source when a directory is
// configured, and the remote listing source otherwise.
func NewSource(cfg config.BackdropConfig) Source {
	if cfg.Dir != "" {
		return NewDirSource(cfg.Dir)
	}
	return NewRedditSource(cfg)
}
