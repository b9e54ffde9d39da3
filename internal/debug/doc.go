// Package debug provides optional file-based debug logging.
//
// When the GRIDLAYOUT_DEBUG environment variable is set to a file path,
// layouts log prepare passes and invalidations to that file through a
// logr.Logger. Otherwise, logging is a no-op.
package debug
