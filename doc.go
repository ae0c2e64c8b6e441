// Package finbook provides the core types and logic of a local-first personal
// budgeting book: recurring income and expense declarations, month-by-month
// balance and savings projection, and savings goals with monthly progress.
//
// The core functionalities include:
//   - Ledger Management: Recording recurring or one-off transaction items as
//     canonical facts, alongside opening-balance overrides and savings
//     movements.
//   - Balance Projection: A deterministic fold deriving, for every month, the
//     active occurrences, the cumulative balance and savings, and a
//     good/neutral/bad rating.
//   - Goal Tracking: Savings goals accruing a fixed monthly contribution per
//     calendar month crossed, capped at their target.
//   - Data Persistence: Encoding and decoding the book to human-readable,
//     version-controllable JSONL files, plus import of the original browser
//     app's storage dumps.
//
// This package serves as the foundational logic for the `fb` command-line
// tool.
package finbook
