// Package logger holds the process-wide structured logger.
//
// Logger is a no-op until Initialize is called, so library code can log
// unconditionally. Commands call Initialize once with the output mode and
// the -v count; components that need a logger receive Logger (or a Named
// child of it) at construction.
package logger
