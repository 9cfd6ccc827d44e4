// Package signalstore keeps the device signals a browser reported about
// itself, keyed by client id, so later requests that only carry HTTP headers
// can still be classified with the real viewport width and touch support.
//
// Only the raw signals are stored. Classification is recomputed from them on
// every request, so changing thresholds takes effect immediately.
//
// Two implementations are provided:
//
//   - MemoryStore - a bounded in-process LRU with per-entry expiry
//   - RedisStore - JSON values in Redis with a TTL, shared between replicas
//
// Both return ErrNotFound for unknown or expired clients and ErrEmptyClientID
// for an empty key.
package signalstore
