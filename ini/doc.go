// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a parser and a concurrency-safe store for the INI file
format. See https://en.wikipedia.org/wiki/INI_file.

A Store is loaded from a file or stream as a whole and then queried by
section and key, either as raw strings or converted to Go scalar types.
Reloading a Store replaces its contents only if the new source parses
successfully.

Syntax

An INI file is text read one line at a time. Spaces, tabs, and the other
ASCII whitespace characters at the beginning and end of each line are
ignored, as are blank lines.

If the first character of a line is a semicolon (';'), the line is a comment
and is ignored. Inline comments are not supported.

A section is started by writing its name in square brackets ('[' and ']') on
its own line and ends at the next section name or the end of file:

	[section]
	key1=value1
	key2=value2

Whitespace around the section name is ignored, and the name must not be
empty. A property is a key and value written on a single line, separated by
the first equals sign ('='). Whitespace around the key and value is ignored,
and neither may be empty. Values may contain further equals signs:

	[db]
	dsn = user=admin host=localhost

Every property must belong to a section. Any other line is an error. Parsing
stops at the first error, which is reported as a *SyntaxError.

Repeated names

If a key is repeated within a section, the last value is used. Multiple
sections may have the same name. These are treated as if their properties
were presented contiguously in the same section.

Names are case-sensitive. A section header that is never followed by a
property does not create a section.
*/
package ini
