// Package datetime distinguishes full date-time strings from date-only
// strings and converts either into canonical ISO-8601 UTC form.
package datetime
