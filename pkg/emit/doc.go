/*
Package emit turns screened entries into artifacts that a consuming program can use.

  - GoSource generates a Go file with an accessor function per entry, a name lookup, and its own copy of the decode routine. This pairs well with go:generate comments.
  - Resource writes a compact binary file that can be embedded or side-loaded, and read back with LoadResource.
  - Bolt writes a bbolt database that can be read back with LoadBolt.

None of these artifacts ever contain plain text, but remember that the keys are stored right alongside the screened data.
*/
package emit
