// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Decode copies the properties of the named section into the struct pointed
// to by v. Fields are matched to keys by their "ini" tag, or by
// case-insensitive field name if untagged. Numeric and boolean fields are
// parsed from the whole value with the same rules as Store.Int, Store.Uint64,
// Store.Float64, and Store.Bool, and time.Duration fields are parsed with
// time.ParseDuration. Fields without a matching key are left unchanged.
//
// Decode panics if v is not a non-nil pointer.
func (s *Store) Decode(section string, v interface{}) error {
	if rv := reflect.ValueOf(v); rv.Kind() != reflect.Ptr || rv.IsNil() {
		panic(fmt.Sprintf("ini.Store.Decode(%q, %T): not a non-nil pointer", section, v))
	}
	sect, err := s.Section(section)
	if err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  v,
		TagName: "ini",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			stringToScalarHookFunc,
		),
	})
	if err != nil {
		return fmt.Errorf("decode ini section [%s]: %w", section, err)
	}
	if err := dec.Decode(sect); err != nil {
		return &ConversionError{
			Section: section,
			Type:    reflect.TypeOf(v).Elem().String(),
			Err:     err,
		}
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// stringToScalarHookFunc converts strings to numeric and boolean fields with
// the same base 10 parsers as the typed getters.
func stringToScalarHookFunc(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to == durationType {
		return data, nil
	}
	s := data.(string)
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.ParseInt(s, 10, to.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseUint(s, 10, to.Bits())
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(s, to.Bits())
	case reflect.Bool:
		return strconv.ParseBool(s)
	default:
		return data, nil
	}
}
