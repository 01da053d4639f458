// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// A Document is a parsed INI source: a map of section names to their
// properties.
type Document map[string]Section

// A Section is a map of property keys to values.
type Section map[string]string

// Sections returns the sorted names of the sections in doc.
func (doc Document) Sections() []string {
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (doc Document) clone() Document {
	if doc == nil {
		return nil
	}
	c := make(Document, len(doc))
	for name, sect := range doc {
		c[name] = sect.clone()
	}
	return c
}

func (sect Section) clone() Section {
	c := make(Section, len(sect))
	for k, v := range sect {
		c[k] = v
	}
	return c
}

// Parse parses an INI source. Parse stops at the first invalid line and
// returns a *SyntaxError describing it. Errors from r are returned wrapped
// and are never a *SyntaxError.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader) (Document, error) {
	return parse("", r)
}

// ParseFile opens and parses the INI file at the given path.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse ini file: %w", err)
	}
	defer f.Close() // Close errors irrelevant for a read-only file.
	return parse(path, f)
}

func parse(name string, r io.Reader) (Document, error) {
	br := bufio.NewReader(r)
	doc := make(Document)
	var current string
	for lineno := 1; ; lineno++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			if name != "" {
				return nil, fmt.Errorf("parse ini file: %s:%d: %w", name, lineno, readErr)
			}
			return nil, fmt.Errorf("parse ini file: line %d: %w", lineno, readErr)
		}
		if err := doc.addLine(&current, trimSpace(line)); err != nil {
			return nil, &SyntaxError{Name: name, Line: lineno, Err: err}
		}
		if readErr == io.EOF {
			return doc, nil
		}
	}
}

// addLine applies a single trimmed line to doc. current holds the name of
// the open section, or the empty string before the first header.
func (doc Document) addLine(current *string, line string) error {
	if line == "" || line[0] == ';' {
		return nil
	}
	if line[0] == '[' {
		header, ok := sectionName(line)
		if !ok {
			return ErrMalformedSectionHeader
		}
		*current = header
		return nil
	}
	i := strings.IndexByte(line, '=')
	if i == -1 {
		return ErrUnrecognizedLine
	}
	key := trimSpace(line[:i])
	value := trimSpace(line[i+1:])
	if key == "" || value == "" {
		return ErrEmptyKeyOrValue
	}
	if *current == "" {
		return ErrPropertyOutsideSection
	}
	sect := doc[*current]
	if sect == nil {
		sect = make(Section)
		doc[*current] = sect
	}
	sect[key] = value
	return nil
}

// sectionName returns the name inside a trimmed "[name]" header line.
func sectionName(line string) (string, bool) {
	if len(line) < 3 || line[len(line)-1] != ']' {
		return "", false
	}
	name := trimSpace(line[1 : len(line)-1])
	return name, name != ""
}

// asciiSpace is the set of characters removed by trimSpace. Unicode
// whitespace is kept as part of keys and values.
const asciiSpace = " \t\n\v\f\r"

func trimSpace(s string) string {
	return strings.Trim(s, asciiSpace)
}
