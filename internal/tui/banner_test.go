// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/records-dashboard/models"
)

func TestBanner_CountInBadgeAndSentence(t *testing.T) {
	tests := []struct {
		name         string
		banner       Banner
		wantBadge    string
		wantSentence string
	}{
		{
			name:         "zero",
			banner:       Banner{Noun: "contacts", Count: 0},
			wantBadge:    "0 pending",
			wantSentence: "0 contacts are incomplete and need review.",
		},
		{
			name:         "five",
			banner:       Banner{Noun: "contacts", Count: 5},
			wantBadge:    "5 pending",
			wantSentence: "5 contacts are incomplete and need review.",
		},
		{
			name:         "one",
			banner:       Banner{Noun: "contacts", Count: 1},
			wantBadge:    "1 pending",
			wantSentence: "1 contact is incomplete and needs review.",
		},
		{
			name:         "negative clamps to zero",
			banner:       Banner{Noun: "invoices", Count: -3},
			wantBadge:    "0 pending",
			wantSentence: "0 invoices are incomplete and need review.",
		},
		{
			name:         "default noun",
			banner:       Banner{Count: 2},
			wantBadge:    "2 pending",
			wantSentence: "2 records are incomplete and need review.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBadge, tt.banner.Badge())
			assert.Equal(t, tt.wantSentence, tt.banner.Sentence())

			view := tt.banner.View()
			assert.Contains(t, view, tt.wantBadge)
			assert.Contains(t, view, tt.wantSentence)
		})
	}
}

func TestBanner_ViewIsPure(t *testing.T) {
	calls := 0
	b := Banner{Noun: "contacts", Count: 5, OnReview: func() { calls++ }}

	first := b.View()
	second := b.View()

	assert.Equal(t, first, second)
	assert.Zero(t, calls)
}

func TestBanner_Review(t *testing.T) {
	calls := 0
	b := Banner{Noun: "contacts", Count: 5, OnReview: func() { calls++ }}

	b.Review()

	assert.Equal(t, 1, calls)
}

func TestBanner_ReviewWithoutCallback(t *testing.T) {
	assert.NotPanics(t, func() { Banner{Count: 1}.Review() })
}

func TestBanner_Title(t *testing.T) {
	tests := []struct {
		name   string
		banner Banner
		want   string
	}{
		{name: "from noun", banner: Banner{Noun: "contacts"}, want: "Contacts"},
		{name: "explicit", banner: Banner{Title: "Missing emails", Noun: "contacts"}, want: "Missing emails"},
		{name: "non-ascii noun", banner: Banner{Noun: "élèves"}, want: "Élèves"},
		{name: "cyrillic noun", banner: Banner{Noun: "контакты"}, want: "Контакты"},
		{name: "default noun", banner: Banner{}, want: "Records"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.banner.title()
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.Contains(t, tt.banner.View(), tt.want)
		})
	}
}

func TestSingular(t *testing.T) {
	tests := map[string]string{
		"contacts":  "contact",
		"companies": "company",
		"addresses": "address",
		"boxes":     "box",
		"matches":   "match",
		"invoices":  "invoice",
		"class":     "class",
		"data":      "data",
	}

	for plural, want := range tests {
		assert.Equal(t, want, singular(plural), plural)
	}
}

func TestRenderPending(t *testing.T) {
	out := RenderPending([]models.PendingRecords{
		{Source: models.RecordSource{Table: "contacts", Column: "email", Noun: "contacts"}, Count: 5},
		{Source: models.RecordSource{Table: "invoices", Column: "paid_at", Noun: "invoices"}, Count: 0},
	})

	assert.Contains(t, out, "5 pending")
	assert.Contains(t, out, "5 contacts are incomplete and need review.")
	assert.Contains(t, out, "0 pending")
	assert.Contains(t, out, "0 invoices are incomplete and need review.")
	assert.Empty(t, RenderPending(nil))
}
