// Package log provides structured logging helpers. Survey pages carry
// word lists thousands of entries long; the handler here keeps them from
// flooding the log output.
package log
