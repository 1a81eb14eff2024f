// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecordSource describes a table on the backend whose rows are considered
// incomplete while Column is null.
type RecordSource struct {
	// Table is the REST resource (table or view) name, e.g. "contacts".
	Table string `json:"table"`

	// Column is the column that must be filled for a row to be complete.
	Column string `json:"column"`

	// Noun is the human readable plural shown in banners, e.g. "contacts".
	// Defaults to Table.
	Noun string `json:"noun"`
}

// PendingRecords is the number of incomplete rows found for a single
// [RecordSource].
type PendingRecords struct {
	Source RecordSource `json:"source"`
	Count  int          `json:"count"`
}
