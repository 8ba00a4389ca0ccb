package main

import (
	"flag"
	"fmt"
	"go/types"
	"os"
	"reflect"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/go/packages"
)

// tableSpec is one "Type:table" argument.
type tableSpec struct {
	TypeName string
	Table    string
	Fields   []field
}

type field struct {
	Name   string
	Column string
}

func main() {
	out := flag.String("out", "columns_gen.go", "output file name")
	flag.Parse()

	// Special env variable set by "go generate"
	goFile := os.Getenv("GOFILE")
	if goFile == "" {
		failErr(fmt.Errorf("GOFILE not set, run through go generate"))
	}

	if flag.NArg() == 0 {
		failErr(fmt.Errorf("expected at least one argument: [Type:table]"))
	}

	specs, err := parseSpecs(flag.Args())
	if err != nil {
		failErr(err)
	}

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedFiles}
	pkgs, err := packages.Load(cfg, fmt.Sprintf("file=%s", goFile))
	if err != nil {
		failErr(fmt.Errorf("loading packages for inspection: %v", err))
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(1)
	}

	pkg := pkgs[0]

	for i := range specs {
		obj := pkg.Types.Scope().Lookup(specs[i].TypeName)
		if obj == nil {
			failErr(fmt.Errorf("%s not found in lookup", specs[i].TypeName))
		}
		if _, ok := obj.(*types.TypeName); !ok {
			failErr(fmt.Errorf("%v is not a named type", obj))
		}
		structType, ok := obj.Type().Underlying().(*types.Struct)
		if !ok {
			failErr(fmt.Errorf("type %v is a %T, not a struct", obj, obj.Type().Underlying()))
		}
		specs[i].Fields = columnFields(structType)
		if len(specs[i].Fields) == 0 {
			failErr(fmt.Errorf("type %v has no col tags", obj))
		}
	}

	f := render(pkg.Name, specs)
	if err := f.Save(*out); err != nil {
		failErr(fmt.Errorf("writing %s: %v", *out, err))
	}
}

func parseSpecs(args []string) ([]tableSpec, error) {
	specs := make([]tableSpec, 0, len(args))
	for _, arg := range args {
		typeName, table, ok := strings.Cut(arg, ":")
		if !ok || typeName == "" || table == "" {
			return nil, fmt.Errorf("invalid argument %q, expected Type:table", arg)
		}
		specs = append(specs, tableSpec{TypeName: typeName, Table: table})
	}
	return specs, nil
}

// columnFields returns the struct fields carrying a col tag, in declaration order.
func columnFields(structType *types.Struct) []field {
	var fields []field
	for i := 0; i < structType.NumFields(); i++ {
		col, ok := reflect.StructTag(structType.Tag(i)).Lookup("col")
		if !ok || col == "" || col == "-" {
			continue
		}
		fields = append(fields, field{Name: structType.Field(i).Name(), Column: col})
	}
	return fields
}

func render(pkgName string, specs []tableSpec) *jen.File {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by colgen. DO NOT EDIT.")

	for _, spec := range specs {
		recv := receiverName(spec.TypeName)

		columns := make([]jen.Code, 0, len(spec.Fields))
		values := make([]jen.Code, 0, len(spec.Fields))
		for _, fld := range spec.Fields {
			columns = append(columns, jen.Lit(fld.Column))
			values = append(values, jen.Id(recv).Dot(fld.Name))
		}

		f.Func().Params(jen.Id(spec.TypeName)).Id("TableName").Params().String().Block(
			jen.Return(jen.Lit(spec.Table)),
		)
		f.Line()
		f.Func().Params(jen.Id(spec.TypeName)).Id("Columns").Params().Index().String().Block(
			jen.Return(jen.Index().String().Values(columns...)),
		)
		f.Line()
		f.Func().Params(jen.Id(recv).Id(spec.TypeName)).Id("ColumnValues").Params().Index().Interface().Block(
			jen.Return(jen.Index().Interface().Values(values...)),
		)
		f.Line()
	}
	return f
}

func receiverName(typeName string) string {
	for _, r := range typeName {
		return string(unicode.ToLower(r))
	}
	return "v"
}

func failErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
