package docstore

import (
	"context"
	"errors"
	"time"
)

// Collection names used by the pipeline jobs.
const (
	CollectionDailyNews  = "daily_news"
	CollectionDailyMedia = "daily_media"
	CollectionPrices     = "commodity_prices"
)

// LatestDocID is the alias document holding the most recent run's output,
// distinct from the date-keyed historical record.
const LatestDocID = "latest"

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("docstore: document not found")

// Timestamped documents receive a store-assigned write timestamp on Put.
type Timestamped interface {
	StampWriteTime(t time.Time)
}

// Store is a date-keyed document store. Put is a full-document overwrite;
// there is no field-level merge.
type Store interface {
	Put(ctx context.Context, collection, docID string, doc any) error
	Get(ctx context.Context, collection, docID string, out any) error
	Close() error
}
