// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"strconv"
	"time"
)

// A Converter parses a property value into a T. It must reject any input it
// does not consume entirely.
type Converter[T any] func(s string) (T, error)

// GetAs looks up the given key like Store.Get and converts its value with
// conv. Lookup errors are returned unchanged. If conv fails, GetAs returns a
// *ConversionError.
func GetAs[T any](s *Store, section, key string, conv Converter[T]) (T, error) {
	if conv == nil {
		panic("ini.GetAs(..., nil)")
	}
	var zero T
	v, err := s.Get(section, key)
	if err != nil {
		return zero, err
	}
	x, err := conv(v)
	if err != nil {
		return zero, &ConversionError{
			Section: section,
			Key:     key,
			Type:    fmt.Sprintf("%T", zero),
			Err:     err,
		}
	}
	return x, nil
}

// Int returns the value of the given key as a base 10 int.
func (s *Store) Int(section, key string) (int, error) {
	return GetAs(s, section, key, strconv.Atoi)
}

// Int64 returns the value of the given key as a base 10 int64.
func (s *Store) Int64(section, key string) (int64, error) {
	return GetAs(s, section, key, parseInt64)
}

// Uint64 returns the value of the given key as a base 10 uint64.
func (s *Store) Uint64(section, key string) (uint64, error) {
	return GetAs(s, section, key, parseUint64)
}

// Float64 returns the value of the given key as a float64.
func (s *Store) Float64(section, key string) (float64, error) {
	return GetAs(s, section, key, parseFloat64)
}

// Bool returns the value of the given key as a bool. It accepts the same
// strings as strconv.ParseBool: 1, t, T, TRUE, true, True, 0, f, F, FALSE,
// false, and False.
func (s *Store) Bool(section, key string) (bool, error) {
	return GetAs(s, section, key, strconv.ParseBool)
}

// Duration returns the value of the given key parsed by time.ParseDuration.
func (s *Store) Duration(section, key string) (time.Duration, error) {
	return GetAs(s, section, key, time.ParseDuration)
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
