package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/NoelleStern/rmpp"
	"github.com/NoelleStern/rmpp/ir"
	"github.com/NoelleStern/rmpp/wire"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var colors *Colors
	if cfg.Color || ttyOut(cc.Out) {
		colors = NewColors()
	}
	for _, arg := range args {
		data, err := readArg(arg)
		if err != nil {
			return err
		}
		node, err := rmpp.Unpack(data)
		if err != nil {
			return fmt.Errorf("error unpacking %s: %w", arg, err)
		}
		vs := &viewState{w: cc.Out, colors: colors, indent: 2}
		if err := vs.node(node, 0); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cc.Out); err != nil {
			return err
		}
	}
	return nil
}

func ttyOut(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// viewState renders the typed document with per-category colors.
// Output matches the JSON document schema, indented.
type viewState struct {
	w      io.Writer
	colors *Colors
	indent int
}

func (vs *viewState) color(cat wire.Category, attr ColorAttr, s string) string {
	if vs.colors == nil {
		return s
	}
	return vs.colors.Color(cat, attr, s)
}

func (vs *viewState) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(vs.w, format, args...)
	return err
}

func (vs *viewState) pad(depth int) string {
	return strings.Repeat(" ", vs.indent*depth)
}

func (vs *viewState) node(n *ir.Node, depth int) error {
	cat := n.Category()
	pad := vs.pad(depth)
	inner := vs.pad(depth + 1)
	if err := vs.printf("{\n%s%s: %d,\n", inner,
		vs.color(cat, FieldColor, `"raw_marker"`), n.Marker); err != nil {
		return err
	}
	if err := vs.printf("%s%s: %s,\n", inner,
		vs.color(cat, FieldColor, `"basic_type"`),
		vs.color(cat, TypeColor, strconv.Quote(cat.String()))); err != nil {
		return err
	}
	if err := vs.printf("%s%s: {\n", inner, vs.color(cat, FieldColor, `"data"`)); err != nil {
		return err
	}
	dataPad := vs.pad(depth + 2)
	if err := vs.printf("%s%s: %s,\n", dataPad,
		vs.color(cat, FieldColor, `"type"`),
		vs.color(cat, TypeColor, strconv.Quote(n.Variant.String()))); err != nil {
		return err
	}
	if err := vs.printf("%s%s: ", dataPad, vs.color(cat, FieldColor, `"value"`)); err != nil {
		return err
	}
	if err := vs.value(n, depth+2); err != nil {
		return err
	}
	return vs.printf("\n%s}\n%s}", inner, pad)
}

func (vs *viewState) value(n *ir.Node, depth int) error {
	cat := n.Category()
	switch cat {
	case wire.ArrayCategory:
		if len(n.Values) == 0 {
			return vs.printf("[]")
		}
		if err := vs.printf("[\n"); err != nil {
			return err
		}
		for i, v := range n.Values {
			if err := vs.printf("%s", vs.pad(depth+1)); err != nil {
				return err
			}
			if err := vs.node(v, depth+1); err != nil {
				return err
			}
			if err := vs.sep(i < len(n.Values)-1); err != nil {
				return err
			}
		}
		return vs.printf("%s]", vs.pad(depth))
	case wire.MapCategory:
		if len(n.Fields) == 0 {
			return vs.printf("[]")
		}
		if err := vs.printf("[\n"); err != nil {
			return err
		}
		for i := range n.Fields {
			if err := vs.printf("%s[\n%s", vs.pad(depth+1), vs.pad(depth+2)); err != nil {
				return err
			}
			if err := vs.node(n.Fields[i], depth+2); err != nil {
				return err
			}
			if err := vs.printf(",\n%s", vs.pad(depth+2)); err != nil {
				return err
			}
			if err := vs.node(n.Values[i], depth+2); err != nil {
				return err
			}
			if err := vs.printf("\n%s]", vs.pad(depth+1)); err != nil {
				return err
			}
			if err := vs.sep(i < len(n.Fields)-1); err != nil {
				return err
			}
		}
		return vs.printf("%s]", vs.pad(depth))
	case wire.ExtensionCategory:
		return vs.printf("{\"ext_type\": %d, \"bytes\": %s}", n.ExtType,
			vs.color(cat, ValueColor,
				strconv.Quote(base64.StdEncoding.EncodeToString(n.Bytes))))
	default:
		return vs.printf("%s", vs.color(cat, ValueColor, scalarText(n)))
	}
}

func (vs *viewState) sep(more bool) error {
	if more {
		return vs.printf(",\n")
	}
	return vs.printf("\n")
}

func scalarText(n *ir.Node) string {
	switch n.Variant {
	case wire.Nil:
		return "null"
	case wire.False:
		return "false"
	case wire.True:
		return "true"
	case wire.FixPos, wire.UInt8, wire.UInt16, wire.UInt32, wire.UInt64:
		return strconv.FormatUint(n.Uint, 10)
	case wire.FixNeg, wire.Int8, wire.Int16, wire.Int32, wire.Int64:
		return strconv.FormatInt(n.Int, 10)
	case wire.F32:
		return strconv.FormatFloat(float64(n.Float32), 'g', -1, 32)
	case wire.F64:
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	case wire.FixStr, wire.Str8, wire.Str16, wire.Str32:
		return strconv.Quote(n.String)
	case wire.Bin8, wire.Bin16, wire.Bin32:
		return strconv.Quote(base64.StdEncoding.EncodeToString(n.Bytes))
	}
	return "null"
}
