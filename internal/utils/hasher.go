package utils

import "hash/fnv"

// ArticleID derives a stable integer identifier from an article link.
// The same URL yields the same ID on every run and platform; the result
// is reduced to nine digits to keep IDs compact in stored documents.
func ArticleID(link string) int64 {
	h := fnv.New64a()
	h.Write([]byte(link))
	return int64(h.Sum64() % 1_000_000_000)
}
