// Package networth provides the functions and types behind a personal net
// worth tracker. It is designed to be local-first: all the data lives in a
// single aggregate, persisted as a whole, and every figure shown to the user
// is derived from it on demand.
//
// The core functionalities include:
//   - Data Model: assets, liabilities, a dated history of net worth
//     snapshots, and an optional net worth goal, bundled in [FinancialData].
//   - Money Utilities: total sanitization of user entered amounts and whole
//     dollar currency formatting.
//   - Derivation Engine: stateless functions computing totals, health level,
//     insights, milestones, budget recommendations and goal progress. The
//     [Summary] gathers them for a given day.
//   - Snapshot History: an append or replace-by-date log of frozen totals.
//
// Persistence (with optional encryption at rest) lives in the store package,
// and the application state controller in the app package. This package
// serves as the foundational logic for the `nw` command-line tool.
package networth
