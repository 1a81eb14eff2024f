// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const defaultNoun = "records"

// Banner announces that some records are incomplete and offers a review
// action. It is a pure function of Count and OnReview: rendering has no side
// effects and reviewing only calls OnReview.
type Banner struct {
	// Title is the banner heading. Defaults to the capitalized noun.
	Title string
	// Noun is the plural name of the records, e.g. "contacts".
	Noun string
	// Count is the number of incomplete records. Negative values render as 0.
	Count int
	// OnReview is called by Review.
	OnReview func()
}

// PendingCount returns Count clamped to zero.
func (b Banner) PendingCount() int {
	return max(b.Count, 0)
}

// Badge returns the pending-count badge text, e.g. "5 pending".
func (b Banner) Badge() string {
	return fmt.Sprintf("%d pending", b.PendingCount())
}

// Sentence returns the explanatory sentence, e.g.
// "5 contacts are incomplete and need review.".
func (b Banner) Sentence() string {
	count := b.PendingCount()
	if count == 1 {
		return fmt.Sprintf("1 %s is incomplete and needs review.", singular(b.noun()))
	}
	return fmt.Sprintf("%d %s are incomplete and need review.", count, b.noun())
}

// View renders the banner.
func (b Banner) View() string {
	return b.render(false)
}

// Review invokes OnReview once. A banner without a callback does nothing.
func (b Banner) Review() {
	if b.OnReview != nil {
		b.OnReview()
	}
}

func (b Banner) render(selected bool) string {
	style := bannerStyle
	if selected {
		style = selectedBannerStyle
	}

	heading := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render(b.title()),
		"  ",
		badgeStyle.Render(b.Badge()),
	)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		heading,
		sentenceStyle.Render(b.Sentence()),
	))
}

func (b Banner) noun() string {
	if noun := strings.TrimSpace(b.Noun); noun != "" {
		return noun
	}
	return defaultNoun
}

func (b Banner) title() string {
	if title := strings.TrimSpace(b.Title); title != "" {
		return title
	}
	noun := b.noun()
	r, n := utf8.DecodeRuneInString(noun)
	return string(unicode.ToUpper(r)) + noun[n:]
}

// singular makes a best-effort English singular of a plural noun.
func singular(noun string) string {
	switch {
	case strings.HasSuffix(noun, "ies") && len(noun) > 3:
		return noun[:len(noun)-3] + "y"
	case strings.HasSuffix(noun, "sses"),
		strings.HasSuffix(noun, "xes"),
		strings.HasSuffix(noun, "ches"),
		strings.HasSuffix(noun, "shes"):
		return noun[:len(noun)-2]
	case strings.HasSuffix(noun, "ss"):
		return noun
	case strings.HasSuffix(noun, "s") && len(noun) > 1:
		return noun[:len(noun)-1]
	default:
		return noun
	}
}
