// Package export serializes views into deterministic CSV documents.
// Output depends only on the input rows, so repeated exports of the same
// view are byte-identical.
package export

import (
	"strconv"
	"strings"

	"insiderwatch/internal/views"
)

// Fixed column sets for the two export surfaces.
var (
	AlertColumns          = []string{"User", "Event", "Risk Score", "Detection Method", "Time"}
	ProfileSummaryColumns = []string{"User", "Logins", "Files Accessed", "Last Active"}
	ProfileAnomalyColumns = []string{"Anomaly Type", "Time", "Method", "Details", "Severity"}
)

// Encode renders a CSV document with minimal quoting: a field is wrapped
// in double quotes only when it contains a comma, quote, or newline, with
// internal quotes doubled. Rows keep their input order.
func Encode(header []string, rows [][]string) string {
	var b strings.Builder
	writeLine(&b, header, false)
	for _, row := range rows {
		writeLine(&b, row, false)
	}
	return b.String()
}

// EncodeQuoted renders a CSV document whose data fields are all double
// quoted, header unquoted. Used for the profile anomaly table, where
// details routinely contain punctuation.
func EncodeQuoted(header []string, rows [][]string) string {
	var b strings.Builder
	writeLine(&b, header, false)
	for _, row := range rows {
		writeLine(&b, row, true)
	}
	return b.String()
}

func writeLine(b *strings.Builder, fields []string, forceQuote bool) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if forceQuote || needsQuoting(field) {
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		} else {
			b.WriteString(field)
		}
	}
	b.WriteByte('\n')
}

func needsQuoting(field string) bool {
	return strings.ContainsAny(field, ",\"\n\r")
}

// AlertsDocument serializes alert rows in their given order.
func AlertsDocument(rows []views.Row) string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{
			row.User,
			row.EventType,
			strconv.Itoa(row.RiskScore),
			row.DetectionMethod,
			row.Time,
		})
	}
	return Encode(AlertColumns, out)
}

// ProfileDocument serializes a profile view as two stacked tables: the
// summary row, a blank separator line, then the anomaly detail table with
// every field quoted.
func ProfileDocument(view views.ProfileView) string {
	summary := Encode(ProfileSummaryColumns, [][]string{{
		view.User,
		strconv.Itoa(view.LoginCount),
		strconv.Itoa(view.FilesAccessedCount),
		view.LastActive,
	}})

	anomalies := make([][]string, 0, len(view.Anomalies))
	for _, row := range view.Anomalies {
		anomalies = append(anomalies, []string{
			row.EventType,
			row.Time,
			row.DetectionMethod,
			row.Details,
			row.SeverityLabel,
		})
	}

	return summary + "\n" + EncodeQuoted(ProfileAnomalyColumns, anomalies)
}
