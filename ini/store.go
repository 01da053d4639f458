// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"fmt"
	"io"
	"sync"

	"zombiezen.com/go/log"
)

// A Store holds the most recently loaded INI document and answers lookups
// against it. The zero value is an empty store. Lookups may be called from
// multiple goroutines concurrently with each other and with Load.
type Store struct {
	loadMu sync.Mutex // serializes loads

	mu  sync.RWMutex
	doc Document
}

// Load parses the INI file at the given path and replaces the store's
// contents with it. The file is closed before Load returns.
//
// If the file cannot be opened or read, Load returns the underlying error
// wrapped. If the file is malformed, Load returns a *SyntaxError for the
// first invalid line. In either case the store's previous contents are left
// untouched.
func (s *Store) Load(ctx context.Context, path string) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	doc, err := ParseFile(path)
	if err != nil {
		return err
	}
	s.replace(ctx, path, doc)
	return nil
}

// LoadReader is like Load, but parses r instead of opening a file. The name
// is used in error messages and may be empty.
func (s *Store) LoadReader(ctx context.Context, name string, r io.Reader) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	doc, err := parse(name, r)
	if err != nil {
		return err
	}
	s.replace(ctx, name, doc)
	return nil
}

func (s *Store) replace(ctx context.Context, name string, doc Document) {
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	if name == "" {
		log.Debugf(ctx, "Loaded INI from reader (%d sections)", len(doc))
		return
	}
	log.Debugf(ctx, "Loaded INI %s (%d sections)", name, len(doc))
}

// Get returns the value of the given key in the given section. Names are
// matched exactly. If the section has no properties, Get returns an error
// wrapping ErrSectionNotFound; otherwise, if the key is absent, it returns an
// error wrapping ErrPropertyNotFound.
func (s *Store) Get(section, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sect, ok := s.doc[section]
	if !ok {
		return "", fmt.Errorf("ini: [%s]: %w", section, ErrSectionNotFound)
	}
	v, ok := sect[key]
	if !ok {
		return "", fmt.Errorf("ini: [%s] %s: %w", section, key, ErrPropertyNotFound)
	}
	return v, nil
}

// Has reports whether the given key is set in the given section.
func (s *Store) Has(section, key string) bool {
	_, err := s.Get(section, key)
	return err == nil
}

// Sections returns the sorted names of sections that have properties set.
func (s *Store) Sections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Sections()
}

// Section returns a copy of the properties in the named section.
func (s *Store) Section(name string) (Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sect, ok := s.doc[name]
	if !ok {
		return nil, fmt.Errorf("ini: [%s]: %w", name, ErrSectionNotFound)
	}
	return sect.clone(), nil
}

// Document returns a copy of the store's contents. It returns nil if nothing
// has been loaded.
func (s *Store) Document() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.clone()
}
