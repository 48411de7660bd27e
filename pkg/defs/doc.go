/*
Package defs reads string definitions to be screened.

A definition file is line oriented, with each definition of the form:

	Name = value

Each line is split on the first '=' only, so values may contain '='.
Whitespace around both the name and the value is trimmed.
Parsing is intentionally lenient: blank lines, lines without an '=', and lines with an empty name are silently skipped.
This means a line like "# comment" is ignored, as long as it doesn't contain an '='.
*/
package defs
