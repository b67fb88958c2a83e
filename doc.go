// Package stockroom provides the types and operations for a single-operator
// inventory tracker: an in-memory collection of stock records backed by
// durable flat files, a running revenue ledger, and an append-only action
// history.
//
// The core functionalities include:
//   - Inventory Management: Validating and mutating stock records (add,
//     restock, update, delete) while preserving insertion order.
//   - Sales: The one transaction that touches inventory, ledger and history
//     together, committing both durable artifacts as a single unit.
//   - Data Persistence: Encoding and decoding the inventory, the ledger
//     scalar and the structured action history to plain files, with a
//     commit-marker protocol so a crash never leaves the pair half-written.
//   - Queries: Read-only derived views (search, low-stock partition,
//     statistics) over the current inventory.
//
// This package serves as the foundational logic for the `stk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package stockroom
