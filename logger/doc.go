// Package logger provides structured logging for guardkit, built on zerolog.
//
// The proxy factory logs wrap decisions (which visitor handled a value, which
// wrapping mode was chosen) at debug level, and advisor denials at info level.
// Libraries embedding guardkit can inject their own Logger or rely on the
// silent default (Nop).
package logger
