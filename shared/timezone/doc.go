// Package timezone centralizes time handling in the configured application
// timezone so timestamps persisted and rendered by the service are consistent
// regardless of the host timezone.
package timezone
