package tree

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/google/go-cmp/cmp"
)

// Cloner is implemented by mutable payload values which know how to
// duplicate themselves. Copy uses it in preference to reflection, which
// cannot reach unexported fields.
type Cloner interface {
	CloneValue() any
}

var nodeType = reflect.TypeFor[*Node]()

// IsMutable reports whether v can be changed through a reference to it:
// slices, maps, non-nil pointers, Cloners, and arrays or structs containing
// such values in exported fields. Nodes held as values are not counted.
func IsMutable(v any) bool {
	switch v.(type) {
	case nil, *Node:
		return false
	case Cloner:
		return true
	}
	return mutableValue(reflect.ValueOf(v))
}

func mutableValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return !rv.IsNil()
	case reflect.Pointer:
		return !rv.IsNil() && rv.Type() != nodeType
	case reflect.Interface:
		return !rv.IsNil() && mutableValue(rv.Elem())
	case reflect.Array:
		for i := range rv.Len() {
			if mutableValue(rv.Index(i)) {
				return true
			}
		}
	case reflect.Struct:
		t := rv.Type()
		for i := range rv.NumField() {
			if t.Field(i).IsExported() && mutableValue(rv.Field(i)) {
				return true
			}
		}
	}
	return false
}

// duplicate returns a copy of v sharing nothing mutable with it. Nodes held
// inside values are shared.
func duplicate(v any) any {
	if !IsMutable(v) {
		return v
	}
	if c, ok := v.(Cloner); ok {
		return c.CloneValue()
	}
	d := &duper{seen: map[dupKey]reflect.Value{}}
	return d.value(reflect.ValueOf(v)).Interface()
}

type dupKey struct {
	t   reflect.Type
	ptr uintptr
}

type duper struct {
	// seen maps already duplicated pointers and maps to their copies, so
	// sharing and cycles within a value survive duplication.
	seen map[dupKey]reflect.Value
}

func (d *duper) value(rv reflect.Value) reflect.Value {
	if rv.Kind() != reflect.Interface && rv.CanInterface() {
		if c, ok := rv.Interface().(Cloner); ok && !isNilValue(rv) {
			cv := reflect.ValueOf(c.CloneValue())
			if cv.IsValid() && cv.Type().AssignableTo(rv.Type()) {
				res := reflect.New(rv.Type()).Elem()
				res.Set(cv)
				return res
			}
		}
	}
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		res := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			res.Index(i).Set(d.value(rv.Index(i)))
		}
		return res
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		key := dupKey{t: rv.Type(), ptr: rv.Pointer()}
		if res, ok := d.seen[key]; ok {
			return res
		}
		res := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		d.seen[key] = res
		it := rv.MapRange()
		for it.Next() {
			res.SetMapIndex(it.Key(), d.value(it.Value()))
		}
		return res
	case reflect.Pointer:
		if rv.IsNil() || rv.Type() == nodeType {
			return rv
		}
		key := dupKey{t: rv.Type(), ptr: rv.Pointer()}
		if res, ok := d.seen[key]; ok {
			return res
		}
		res := reflect.New(rv.Type().Elem())
		d.seen[key] = res
		res.Elem().Set(d.value(rv.Elem()))
		return res
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		res := reflect.New(rv.Type()).Elem()
		res.Set(d.value(rv.Elem()))
		return res
	case reflect.Array:
		res := reflect.New(rv.Type()).Elem()
		for i := range rv.Len() {
			res.Index(i).Set(d.value(rv.Index(i)))
		}
		return res
	case reflect.Struct:
		res := reflect.New(rv.Type()).Elem()
		res.Set(rv)
		t := rv.Type()
		for i := range rv.NumField() {
			if t.Field(i).IsExported() {
				res.Field(i).Set(d.value(rv.Field(i)))
			}
		}
		return res
	}
	return rv
}

func isNilValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// valuesEqual compares payload values by content. Nodes nested in values
// compare with Node.Equal, which cmp picks up as their Equal method, the
// way Hash reaches them through hashstructure.Hashable.
func valuesEqual(a, b any) bool {
	return cmp.Equal(a, b, exportAll)
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// FormatValue renders a payload value for reports.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	case *Node:
		return "<tree " + x.BranchName(true, true) + ">"
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}
