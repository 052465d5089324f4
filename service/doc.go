// Package service orchestrates the core components of the matching
// engine — the shared order book, the sequencer, and the execution
// ring — behind a single API, decoupled from network transports like
// gRPC and Kafka.
package service
