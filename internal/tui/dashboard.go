// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/records-dashboard/internal/service"
	"github.com/MKhiriev/records-dashboard/models"
)

const dashboardTitle = "Records dashboard"

type dashboardModel struct {
	ctx       context.Context
	dashboard service.DashboardService
	onReview  func(models.RecordSource)
	interval  time.Duration

	banners   []Banner
	idx       int
	loading   bool
	spinner   spinner.Model
	status    string
	errMsg    string
	updatedAt time.Time
}

func newDashboardModel(ctx context.Context, dashboard service.DashboardService, interval time.Duration, onReview func(models.RecordSource)) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return dashboardModel{
		ctx:       ctx,
		dashboard: dashboard,
		onReview:  onReview,
		interval:  interval,
		loading:   true,
		spinner:   s,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadPending(), m.cmdScheduleRefresh())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pendingLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.updatedAt = msg.at
		m.banners = m.bannersFor(msg.pending)
		if m.idx >= len(m.banners) {
			m.idx = len(m.banners) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case refreshTickMsg:
		if m.loading {
			return m, m.cmdScheduleRefresh()
		}
		m.loading = true
		return m, tea.Batch(m.cmdLoadPending(), m.cmdScheduleRefresh())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.banners)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.review):
		banner, ok := m.current()
		if !ok {
			return m, nil
		}
		banner.Review()
		m.status = fmt.Sprintf("Review requested: %s", banner.Sentence())
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, m.cmdLoadPending()
	}

	return m, nil
}

func (m dashboardModel) View() string {
	header := dashboardTitle
	if m.loading {
		header += "  " + m.spinner.View()
	}

	var body strings.Builder
	switch {
	case len(m.banners) == 0 && m.loading:
		body.WriteString("Counting incomplete records...")
	case len(m.banners) == 0:
		body.WriteString("No record sources.")
	default:
		for i, b := range m.banners {
			body.WriteString(b.render(i == m.idx))
			body.WriteString("\n")
		}
	}

	if !m.updatedAt.IsZero() {
		body.WriteString("\n")
		body.WriteString(helpStyle.Render("updated " + m.updatedAt.Format(time.TimeOnly)))
	}
	if m.status != "" {
		body.WriteString("\n")
		body.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		body.WriteString("\n")
		body.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage(header, body.String(), hotKeysHelp)
}

func (m dashboardModel) current() (Banner, bool) {
	if len(m.banners) == 0 || m.idx < 0 || m.idx >= len(m.banners) {
		return Banner{}, false
	}
	return m.banners[m.idx], true
}

func (m dashboardModel) bannersFor(pending []models.PendingRecords) []Banner {
	banners := make([]Banner, 0, len(pending))
	for _, p := range pending {
		banner := BannerFor(p)
		if m.onReview != nil {
			onReview, src := m.onReview, p.Source
			banner.OnReview = func() { onReview(src) }
		}
		banners = append(banners, banner)
	}
	return banners
}

func (m dashboardModel) cmdLoadPending() tea.Cmd {
	ctx, dashboard := m.ctx, m.dashboard
	return func() tea.Msg {
		pending, err := dashboard.Pending(ctx)
		return pendingLoadedMsg{pending: pending, err: err, at: time.Now()}
	}
}

func (m dashboardModel) cmdScheduleRefresh() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}
