// Package croft is the Composition Root for the croft demo suite.
//
// It connects the shared collection core (keyed repository, linear
// repository, grouping index) with the per-domain demo managers (warehouse,
// ledger, clinic, report cards) that the console front end drives.
//
// Philosophy:
//
// Croft treats a handful of classic teaching demos as one system with a
// single contract worth getting right: a keyed collection that enforces
// identity and reports well-defined, typed failures. Everything around it
// (menus, prompts, seed data, rendering) is replaceable glue.
//
// Features:
//
//   - **Keyed collection**: unique integer identity, duplicate/not-found/
//     invalid-value semantics, fail-fast validation before mutation.
//   - **Linear collection**: insertion-ordered, first-match predicate search
//     and removal; absence is an ordinary probe result, not an error.
//   - **Grouping index**: derived multimap rebuilt on explicit request,
//     never synchronized automatically.
//   - **Typed failures**: every rejection wraps one of four sentinel errors,
//     so callers branch with errors.Is instead of matching strings.
//   - **Bulk import**: comma-separated score lines with per-line
//     diagnostics; malformed records are skipped, never fatal.
//
// Usage:
//
//	repo := croft.NewKeyed[int, *inventory.Item]()
//	if err := repo.Add(item); errors.Is(err, croft.ErrDuplicateKey) {
//		// the id is taken; stored state is untouched
//	}
package croft
