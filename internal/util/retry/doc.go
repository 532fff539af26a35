// Package retry provides exponential backoff retry logic for transient failures.
//
// The [Do] function retries an operation with configurable max attempts,
// initial delay, maximum delay, and an optional cap on total elapsed time.
// It is used for cloud provider API calls and other operations that may
// fail transiently.
package retry
