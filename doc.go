// Package cointrack is a personal finance ledger kept in plain text files.
//
// Income and expense entries are appended, one per line, to a transactions
// file and never rewritten. Per-category budget limits live in a second file
// that is rewritten wholesale on every update. Every query re-reads the files
// in full, so the answers are always consistent with the last completed write
// of the same process:
//   - [TransactionStore]: append-only transaction records, balance, per-category
//     spend, top spending category and a textual report.
//   - [BudgetStore]: category limits.
//   - [Analytics]: combines both into budget snapshots and the expense pre-check
//     used by the command line.
//
// The files are not locked; running two processes against the same data
// directory is unsupported.
package cointrack
