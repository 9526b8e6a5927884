/*
Package operation implements the recolor pipeline for a single file.

	+-------------+     +-------------+     +-------------+
	|    Read     | --> |  Transform  | --> |    Write    |
	|  (fileio)   |     |   (text)    |     |  (atomic)   |
	+-------------+     +-------------+     +-------------+

🎯 Purpose:
- Reads the whole target into memory
- Rejects content that is not UTF-8
- Applies the ordered replacement table in one pass
- Replaces the file through a temp file and rename
- Reports per-rule counts and the success message

⚡ Guarantees:
- The original file is either untouched or fully replaced
- Text outside matched spans is byte-for-byte identical
- Zero matches is not an error

🔍 Example:

	report, err := operation.Run(ctx, operation.Options{
		Target:  "page.html",
		Rules:   palette.Default().Rules(),
		Message: palette.Default().Message,
		Files:   fileio.New(""),
	})
*/
package operation
