// SPDX-License-Identifier: MIT

// Package history keeps the rolling ledger of computation records.
//
// A Log is a fixed-capacity ring buffer: Add is O(1), and once the log is full
// every insertion evicts the oldest record. Entries are returned newest first,
// which is the order a calculator tape shows them.
//
// Default capacity is 20. The Log is safe for concurrent use; a session
// normally owns exactly one.
package history
