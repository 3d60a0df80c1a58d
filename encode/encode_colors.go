package encode

import (
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/signadot/treedict/tree"
)

// ValueType classifies what a report line shows, for coloring.
type ValueType int

const (
	OtherType ValueType = iota
	NullType
	BoolType
	NumberType
	StringType
	ListType
	ObjectType
	AliasType
)

func ValueTypes() []ValueType {
	return []ValueType{OtherType, NullType, BoolType, NumberType, StringType, ListType, ObjectType, AliasType}
}

// TypeOf returns the ValueType of a payload value.
func TypeOf(v any) ValueType {
	switch v.(type) {
	case nil:
		return NullType
	case *tree.Node, yaml.MapSlice:
		return ObjectType
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return BoolType
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return NumberType
	case reflect.String:
		return StringType
	case reflect.Slice, reflect.Array:
		return ListType
	case reflect.Map, reflect.Struct:
		return ObjectType
	}
	return OtherType
}

type Colorable struct {
	Type ValueType
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ValueTypes() {
		able := Colorable{Type: t, Attr: FieldColor}
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = BoolType
	colors.Map[able] = color.CyanString

	able.Type = StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = ListType
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able.Type = ObjectType
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()

	able.Type = AliasType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ValueType, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ValueType, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
