// Package pipeline fans independent conversion work out over worker
// goroutines and merges the results back in input order.
//
// Items are split into contiguous batches; each batch's outputs occupy a
// disjoint index range, so no locking is needed on the result slice.
package pipeline
