// Package expense records personal expenses in one flat file per month and
// computes simple statistics over them.
//
// The core functionalities include:
//   - Record Store: an ordered collection of dated expense records whose
//     indices are always dense (1..N), even after deletions.
//   - Statistics: minimum, maximum, total and average over every record or
//     over the records of a single day.
//   - Persistence: a CSV file per month, loaded once at start and rewritten
//     atomically at the end of each invocation.
//
// This package serves as the foundational logic for the `rcd` command-line
// tool. Each invocation is load, act, save. Two invocations running at the
// same time against the same month file are not supported: there is no
// locking and the last writer wins.
package expense
