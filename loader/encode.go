// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/MKhiriev/go-layered-config/codec"
	"github.com/MKhiriev/go-layered-config/tree"
)

// Encode serializes v in format f using the same key names Load decodes.
// Durations and encoding.TextMarshaler values are written as strings and
// nil maps and slices as empty ones, so the output loads back into an
// equal value.
func Encode[T any](v *T, f codec.Format, opts ...Option) ([]byte, error) {
	return encode(v, f, newOptions(opts))
}

func encode(v any, f codec.Format, o *options) ([]byte, error) {
	c, err := o.codecs.Lookup(f)
	if err != nil {
		return nil, err
	}

	t, err := toTree(v, o.tagName)
	if err != nil {
		return nil, fmt.Errorf("converting config to tree: %w", err)
	}

	data, err := c.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encoding config as %s: %w", f, err)
	}
	return data, nil
}

// toTree converts a struct or map into a tree of plain values keyed the way
// decode expects them.
func toTree(v any, tagName string) (tree.Tree, error) {
	p, err := plain(v, tagName)
	if err != nil {
		return nil, err
	}

	m, ok := p.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("cannot encode %T as a config tree", v)
	}
	return tree.Normalize(m), nil
}

// plain reduces v to the value kinds every codec can represent.
func plain(v any, tagName string) (any, error) {
	if v == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		return plain(rv.Elem().Interface(), tagName)
	}

	if d, ok := v.(time.Duration); ok {
		return d.String(), nil
	}
	if text, ok, err := marshalText(rv); ok {
		return text, err
	}
	if b, ok := v.([]byte); ok {
		return string(b), nil
	}

	switch rv.Kind() {
	case reflect.Struct:
		out := make(map[string]any)
		if err := structToMap(rv, tagName, out); err != nil {
			return nil, err
		}
		return out, nil

	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			p, err := plain(iter.Value().Interface(), tagName)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = p
		}
		return out, nil

	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			p, err := plain(rv.Index(i).Interface(), tagName)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = p
		}
		return out, nil
	}

	// Named scalar types are reduced to their builtin kind.
	if rv.Type().PkgPath() == "" {
		return v, nil
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return nil, fmt.Errorf("unsupported value of type %T", v)
}

// structToMap writes the exported fields of rv into out using the same tag
// rules as mapstructure: a "-" name skips the field, an empty name falls
// back to the field name, embedded structs and ",squash" fields are
// flattened into out and ",omitempty" drops zero values.
func structToMap(rv reflect.Value, tagName string, out map[string]any) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}

		name, flags, _ := strings.Cut(f.Tag.Get(tagName), ",")
		if name == "-" {
			continue
		}
		fv := rv.Field(i)

		if (f.Anonymous && name == "") || hasTagFlag(flags, "squash") {
			inner := fv
			if inner.Kind() == reflect.Pointer {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct && !isTextMarshaler(inner.Type()) {
				if err := structToMap(inner, tagName, out); err != nil {
					return err
				}
				continue
			}
		}

		if name == "" {
			name = f.Name
		}
		if hasTagFlag(flags, "omitempty") && fv.IsZero() {
			continue
		}

		p, err := plain(fv.Interface(), tagName)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		out[name] = p
	}
	return nil
}

func hasTagFlag(flags, flag string) bool {
	for _, f := range strings.Split(flags, ",") {
		if strings.TrimSpace(f) == flag {
			return true
		}
	}
	return false
}

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

func isTextMarshaler(t reflect.Type) bool {
	return t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType)
}

// marshalText renders rv through encoding.TextMarshaler when its type or a
// pointer to it implements one. rv must not be a pointer.
func marshalText(rv reflect.Value) (string, bool, error) {
	tm, ok := rv.Interface().(encoding.TextMarshaler)
	if !ok {
		pv := reflect.New(rv.Type())
		pv.Elem().Set(rv)
		if tm, ok = pv.Interface().(encoding.TextMarshaler); !ok {
			return "", false, nil
		}
	}

	b, err := tm.MarshalText()
	if err != nil {
		return "", true, err
	}
	return string(b), true, nil
}

// rejectFractional fails a float with a fractional part bound for an
// integer field instead of letting it be truncated.
func rejectFractional(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f := reflect.ValueOf(data).Float()
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("cannot decode %v into integer type %s", f, to)
		}
	}
	return data, nil
}

func decoderConfig(out any, o *options) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		TagName:          o.tagName,
		Result:           out,
		Squash:           true,
		WeaklyTypedInput: true,
		ErrorUnset:       !o.partial,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.DecodeHookFuncType(rejectFractional),
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	}
}

// decode populates out from t.
func decode(t tree.Tree, out any, o *options) error {
	dec, err := mapstructure.NewDecoder(decoderConfig(out, o))
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(t))
}
