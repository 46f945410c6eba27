/*
Package hexkit provides the high-level operations behind hexctl and
hexexplorer: render a file, stage an edit, and commit or load a changelog.

# Quick Start

Render the first four rows of a file:

	_, err := hexkit.Read("rom.bin", os.Stdout, 0, 4, nil)

Stage an edit (preview it, then append it to rom.bin.log):

	res, err := hexkit.Write("rom.bin", os.Stdout, 0x10, []byte{0xAA, 0xBB}, nil)

Commit the staged edits:

	_, err := hexkit.Save("rom.bin", nil)

Apply someone else's changelog:

	_, err := hexkit.Load("rom.bin", "fix.log", nil)

# Resources

Every function opens the files it needs and closes them before returning.
Nothing is cached between calls, so the target may be inspected by other
tools between operations; it must not be written by them.
*/
package hexkit
