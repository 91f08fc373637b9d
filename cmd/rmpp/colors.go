package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/NoelleStern/rmpp/wire"
)

type Colorable struct {
	Category wire.Category
	Attr     ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	TypeColor
	ValueColor
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
	for _, c := range wire.Categories() {
		able := Colorable{
			Category: c,
			Attr:     FieldColor,
		}
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = TypeColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Category = wire.NumberCategory
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Category = wire.StringCategory
	colors.Map[able] = color.GreenString

	able.Category = wire.BoolCategory
	colors.Map[able] = color.MagentaString

	able.Category = wire.NilCategory
	colors.Map[able] = color.BlueString

	able.Category = wire.BinaryCategory
	colors.Map[able] = color.YellowString

	able.Category = wire.ExtensionCategory
	colors.Map[able] = color.YellowString

	return colors
}

func (c *Colors) Color(cat wire.Category, attr ColorAttr, s string) string {
	fn, ok := c.Map[Colorable{Category: cat, Attr: attr}]
	if !ok {
		fn = c.Default
	}
	return fn("%s", s)
}

func colorDefault(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}
