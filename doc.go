// Package teller provides the functions and types for managing a
// single-ledger bank account book. It is designed to be local-first and
// auditable: every record lives in one human-readable file, and every
// operation rewrites that file as a whole.
//
// The core functionalities include:
//   - Identity Resolution: normalizing credentials (an 11-digit identifier
//     plus a password) and matching them against stored records.
//   - Account Registry: creating user identities and sub-accounts, with
//     sequential account numbers and duplicate-identity prevention.
//   - Transaction Engine: applying deposits and withdrawals to a single
//     account's balance, withdrawal counter, and statement log, enforcing
//     the per-withdrawal limit and the withdrawal-count limit.
//   - Statement: an ordered, structured transaction log rendered on demand
//     as human-readable text.
//   - Data Persistence: encoding and decoding the whole record collection
//     to and from a tabular, version-controllable format.
//
// This package serves as the foundational logic for the `tlr` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package teller
