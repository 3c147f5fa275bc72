/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package emit

import "text/template"

// fileTemplate renders one complete generated file. The data model is built
// by build() in emit.go; all per-case strings (doc lines, Error() bodies) are
// precomputed there so the template stays purely structural.
//
// Layout quirks (indentation, struct field alignment) are left to the
// go/format pass that follows rendering.
const fileTemplate = `// Code generated by derrgen. DO NOT EDIT.
{{- range .Header}}
// {{.}}
{{- end}}

package {{.Package}}
{{- if .Imports}}

import (
{{- range .Imports}}
	{{printf "%q" .}}
{{- end}}
)
{{- end}}
{{- if .Type.Sealed}}

// {{.Type.Name}} is the closed set of cases of the {{.Type.Name}} taxonomy.
// Only the generated case types below implement it.
type {{.Type.Name}} interface {
	error
	{{.Type.Marker}}()
}
{{- end}}
{{- range .Type.Cases}}

// {{.Doc}}
{{- if .Fields}}
type {{.StructName}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}
{{- else}}
type {{.StructName}} struct{}
{{- end}}
{{- if .Marker}}

func (e *{{.StructName}}) {{.Marker}}() {}
{{- end}}

// {{.ErrorDoc}}
func (e *{{.StructName}}) Error() string { {{.ErrorBody}} }
{{- if .Unwrap}}

// Unwrap returns the wrapped original failure as the causal source.
func (e *{{.StructName}}) Unwrap() error { return e.{{.Unwrap}} }
{{- end}}
{{- if .Msg}}

// ContextMessage returns the context attached at the conversion call site.
func (e *{{.StructName}}) ContextMessage() string { return e.{{.Msg}} }
{{- end}}
{{- end}}

{{range .Cap.Doc}}// {{.}}
{{end -}}
func {{.Cap.Name}}[T any](v T, err error, context any) (T, error) {
	if err == nil {
		return v, nil
	}
{{- if .Cap.Entries}}
	switch cause := err.(type) {
{{- range .Cap.Entries}}
	case {{.Wrapped}}:
		return v, {{.Func}}(cause, context)
{{- end}}
	}
{{- end}}
	return v, err
}
{{- range .Cap.Entries}}

// {{.Func}} realizes {{$.Cap.Name}} for {{.Wrapped}} failures.
func {{.Func}}(cause {{.Wrapped}}, context any) error {
	return &{{.Struct}}{
		{{.Cause}}: cause,
		{{.Msg}}:   fmt.Sprint(context),
	}
}
{{- end}}
`

// tmpl is parsed once; the template text is a compile-time constant.
var tmpl = template.Must(template.New("file").Parse(fileTemplate))
