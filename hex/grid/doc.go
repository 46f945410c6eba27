// Package grid renders byte ranges as an aligned hex/text grid.
//
// # Layout
//
// Every row is RowWidth (16) bytes wide:
//
//	  OFFSET  00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F 	DECODED TEXT
//	 00000000 48 65 6C 6C 6F 0A                                	H e l l o .
//
// The hex column always has 16 slots; missing bytes at end of file are padded
// with blanks so the decoded column stays aligned. The decoded column stops
// at the last byte and is never padded.
//
// # Highlighting
//
// Row accepts highlight ranges in absolute file offsets. Bytes inside a range
// are wrapped with the Palette's Highlight style in both columns. Styling never
// changes byte values; with PlainPalette the output is plain text.
//
// # Sources
//
// Range drives any Source (a bytestore.Store or bytestore.Buffer) row by row
// from a start offset until end of file or a row limit.
package grid
