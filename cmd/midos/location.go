package main

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/hupe1980/midos/blobstore"
	"github.com/hupe1980/midos/blobstore/minio"
	"github.com/hupe1980/midos/blobstore/s3"
)

// location is a parsed input or output reference.
type location struct {
	scheme string // "", "s3" or "minio"
	bucket string
	name   string
}

func parseLocation(raw string) (location, error) {
	if !strings.Contains(raw, "://") {
		return location{name: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return location{}, fmt.Errorf("parse %q: %w", raw, err)
	}
	switch u.Scheme {
	case "s3", "minio":
	case "file":
		return location{name: filepath.FromSlash(u.Path)}, nil
	default:
		return location{}, fmt.Errorf("unsupported scheme %q in %q", u.Scheme, raw)
	}

	name := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || name == "" {
		return location{}, fmt.Errorf("%q: expected %s://bucket/key", raw, u.Scheme)
	}
	return location{scheme: u.Scheme, bucket: u.Host, name: name}, nil
}

// openStore returns the store serving loc and the blob name inside it.
func openStore(ctx context.Context, loc location, region string) (blobstore.BlobStore, string, error) {
	switch loc.scheme {
	case "s3":
		store, err := s3.NewStoreFromConfig(ctx, loc.bucket, "", region)
		if err != nil {
			return nil, "", err
		}
		return store, loc.name, nil
	case "minio":
		store, err := minio.NewStoreFromEnv(loc.bucket, "")
		if err != nil {
			return nil, "", err
		}
		return store, loc.name, nil
	default:
		return blobstore.NewLocalStore(""), loc.name, nil
	}
}
