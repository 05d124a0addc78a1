// Package batch splits large sample sets into fixed-size batches and runs a
// callback over each one, sequentially or with bounded concurrency.
//
// Track replay uses it so that a long recording is processed with
// O(batch size) working memory per worker and can be cancelled between
// batches.
package batch
