// Package utils provides general-purpose helpers used across the
// application: JSON response writing, id generation, email normalization and
// the resty-based HTTP client wrapper.
package utils
