package schedule

import "strings"

// FilterNotifications keeps the rows whose rendered Lines column contains
// needle, ignoring case. An empty needle keeps every row.
func FilterNotifications(rows []NotificationRow, needle string) []NotificationRow {
	if needle == "" {
		return rows
	}

	needle = strings.ToLower(needle)
	filtered := make([]NotificationRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Lines), needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
