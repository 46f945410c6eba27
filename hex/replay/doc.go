// Package replay commits a changelog onto its target file.
//
// Records are applied strictly in log order as in-place overwrites. Nothing
// is coalesced or reordered; where records overlap, the later one wins byte
// by byte simply because it is written later.
//
// # Entry points
//
//   - Apply: replay any record stream onto any io.WriterAt
//   - Save:  replay the target's own changelog (target + ".log")
//   - Load:  replay a changelog at an arbitrary path
//
// # Truncated logs
//
// A log that ends inside a record stops the replay at the last intact
// record. This is a deliberate silent-truncation policy: the partial record
// is dropped, Result.Truncated is set and a warning is logged, but no error
// is returned. Data in a record cut short by an earlier partial write is lost.
//
// # Limitations
//
// The target is assumed to have no other writer. Changes made to it between
// a preview and a save are neither detected nor merged.
package replay
