// Package async defines the asynchronous value shapes the proxy engine can
// descend into: Future (a single value that arrives later) and Stream (zero
// or more values over time).
//
// Both are pull-based and type-erased. Streams follow the
// Next(ctx) (value, ok, err) protocol: no work happens until a value is
// pulled, each stage pulls from the previous one on demand, and
// cancellation travels through the context handed to Next. The mapping
// adapters used by the engine transform only the payload — completion,
// error, and cancellation signaling of the source pass through exactly.
package async
