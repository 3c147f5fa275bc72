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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleTaxonomy = `name: Error
cases:
  - name: Reqwest
    contextual: true
    fields:
      - name: Cause
        type: "*NetworkError"
  - name: Parse
    display: "parse {Input}: invalid"
    fields:
      - name: Input
        type: string
`

func TestRunGenerate_Stdout(t *testing.T) {
	logger = zap.NewNop()

	dir := t.TempDir()
	file := filepath.Join(dir, "taxonomy.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sampleTaxonomy), 0o644))

	taxonomyFile = file
	outFile = ""
	pkgName = "fetch"

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runGenerate(cmd, nil))

	src := out.String()
	assert.Contains(t, src, "package fetch")
	assert.Contains(t, src, "// Source: taxonomy.yaml")
	assert.Contains(t, src, "func WithContext[T any]")
	assert.Contains(t, src, "type ErrorReqwest struct {")
}

func TestRunGenerate_OutFile(t *testing.T) {
	logger = zap.NewNop()

	dir := t.TempDir()
	file := filepath.Join(dir, "taxonomy.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sampleTaxonomy), 0o644))

	taxonomyFile = file
	outFile = filepath.Join(dir, "errors_gen.go")
	pkgName = ""

	require.NoError(t, runGenerate(&cobra.Command{}, nil))

	src, err := os.ReadFile(outFile)
	require.NoError(t, err)
	// Default package falls back to the lowercased taxonomy name.
	assert.Contains(t, string(src), "package error\n")
}

func TestRunGenerate_MissingFile(t *testing.T) {
	logger = zap.NewNop()

	taxonomyFile = filepath.Join(t.TempDir(), "absent.yaml")
	outFile = ""
	pkgName = ""

	err := runGenerate(&cobra.Command{}, nil)
	require.Error(t, err)
}
