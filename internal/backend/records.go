// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/records-dashboard/models"
)

// RestPath is the path prefix of the backend's REST gateway.
const RestPath = "/rest/v1/"

// RecordQuery selects rows of a table. Filters map a column to a gateway
// operator expression such as "is.null" or "eq.open".
type RecordQuery struct {
	Table   string
	Filters map[string]string
}

// IncompleteQuery returns the query matching rows of src whose required
// column is still null.
func IncompleteQuery(src models.RecordSource) RecordQuery {
	return RecordQuery{
		Table:   src.Table,
		Filters: map[string]string{src.Column: "is.null"},
	}
}

// URL returns the address listing the rows matching q under endpoint, as
// used for review links.
func (q RecordQuery) URL(endpoint string) string {
	values := url.Values{}
	values.Set("select", "*")
	for column, expr := range q.Filters {
		values.Set(column, expr)
	}
	return strings.TrimRight(endpoint, "/") + RestPath + url.PathEscape(q.Table) + "?" + values.Encode()
}

// CountRecords returns the number of rows matching q without transferring
// them: it issues a HEAD request with "Prefer: count=exact" and reads the
// total from the Content-Range response header.
func (c *Client) CountRecords(ctx context.Context, q RecordQuery) (int, error) {
	req := c.R(ctx).
		SetHeader("Prefer", "count=exact").
		SetQueryParam("select", "*")
	for column, expr := range q.Filters {
		req.SetQueryParam(column, expr)
	}

	resp, err := req.Head(RestPath + url.PathEscape(q.Table))
	if err != nil {
		return 0, fmt.Errorf("count %s request: %w", q.Table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, fmt.Errorf("count %s: %w", q.Table, err)
	}

	total, err := parseContentRangeTotal(resp.Header().Get("Content-Range"))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", q.Table, err)
	}

	return total, nil
}

// parseContentRangeTotal extracts the total from "0-24/57" or "*/0".
func parseContentRangeTotal(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrMissingCount
	}

	// some gateways prefix the unit: "items 0-24/57"
	if i := strings.LastIndex(value, " "); i >= 0 {
		value = value[i+1:]
	}

	slash := strings.LastIndex(value, "/")
	if slash < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMissingCount, value)
	}

	totalPart := value[slash+1:]
	if totalPart == "*" {
		return 0, fmt.Errorf("%w: total unknown in %q", ErrMissingCount, value)
	}

	total, err := strconv.Atoi(totalPart)
	if err != nil || total < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMissingCount, value)
	}

	return total, nil
}
