// Package quizcontent provides the category and question store behind a
// quiz/game backend, with pluggable backing-document stores.
//
// It exposes a single Service interface covering the public queries (brief
// category listing, question lookup for one or many categories) and the
// admin mutations (create, patch-update, delete). The full collection lives
// in one backing document; every operation loads it fresh, computes in
// memory, and mutations rewrite it in full, so the document is always the
// single source of truth and the process holds no state between requests.
// Implementations of the document store (memory, filesystem, Postgres, S3)
// are provided under subpackages.
//
// Asset References
//
// Category riveFile references are persisted relative and expanded to
// absolute URLs against the requesting origin only when shaping responses;
// see the asseturl subpackage.
package quizcontent
