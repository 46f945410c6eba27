// Package fsync flushes written file data to stable storage using the
// strongest primitive each platform offers.
//
// Replay and changelog appends call File after writing so that a committed
// edit survives a crash of the process that made it.
package fsync
