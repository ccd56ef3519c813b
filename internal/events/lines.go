package events

import "fmt"

// StatusLine is the single line printed for a non-200 feed answer.
func StatusLine(code int, username string) string {
	switch code {
	case 304:
		return "304 - Not modified"
	case 403:
		return "403 - Forbidden"
	case 503:
		return "503 - Service Unavailable"
	default:
		return fmt.Sprintf("Error: %d - Unable to fetch events for user %s", code, username)
	}
}

// UnexpectedLine is printed for network and whole-body decode failures.
func UnexpectedLine(err error) string {
	return fmt.Sprintf("An unexpected error has occured: %v", err)
}

func SkippedLine(n int) string {
	return fmt.Sprintf("(%d malformed event(s) skipped)", n)
}
