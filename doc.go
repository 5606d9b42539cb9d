// Package league provides the core types and functions for tracking a
// recurring poker league's finances and standings. The league's single
// source of truth is a semi-structured spreadsheet (the "tracker"), loaded
// into memory as a Workbook and mutated by explicit operations.
//
// The core functionalities include:
//   - Pool Ledger: a signed running balance per named fund (WSOP, Nightly,
//     Bounty, High Hand) computed from accrual and payout entries.
//   - Leaderboard: a season-cumulative ranking re-derived on every call
//     from all per-event standings sheets, tolerant of renamed columns and
//     malformed rows.
//   - Event Ingestion: converting one tournament-timer export (HTML or
//     delimited text, possibly base64-wrapped) into a new standings sheet
//     plus the matching ledger, roster, and supplies updates.
//   - Financial Summary: joining per-player earnings against per-player
//     contributions to produce net win/loss per player.
//   - Data Persistence: encoding and decoding the tracker to and from a
//     multi-sheet xlsx workbook, and publishing it to a GitHub repository
//     so read-only views can refresh.
//
// This package serves as the foundational logic for the `wsop` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package league
