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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/derrgen"
	"dirpx.dev/derrgen/taxonomy"
)

var (
	taxonomyFile string
	outFile      string
	pkgName      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Go source for one taxonomy definition",
	Long: `Reads a YAML taxonomy definition, runs the generation pipeline and
writes the resulting Go file. With no --out the source goes to stdout.

Example:
  derrgen generate -f taxonomy.yaml -o errors_gen.go -p fetch`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&taxonomyFile, "file", "f", "", "taxonomy definition file (required)")
	generateCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	generateCmd.Flags().StringVarP(&pkgName, "package", "p", "", "target package name (default: lowercased taxonomy name)")
	_ = generateCmd.MarkFlagRequired("file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	def, err := taxonomy.Load(taxonomyFile)
	if err != nil {
		return err
	}
	logger.Debug("taxonomy loaded",
		zap.String("file", taxonomyFile),
		zap.String("type", def.Name().String()),
		zap.Int("cases", len(def.Cases())))

	opts := []derrgen.Option{
		derrgen.WithHeader("Source: " + filepath.Base(taxonomyFile)),
	}
	if pkgName != "" {
		opts = append(opts, derrgen.WithPackage(pkgName))
	}

	art, err := derrgen.Generate(def, opts...)
	if err != nil {
		return err
	}
	logger.Info("taxonomy generated",
		zap.String("type", art.Type.String()),
		zap.String("capability", art.Capability.String()),
		zap.Strings("wrapped", art.Wrapped))

	if outFile == "" {
		_, err = cmd.OutOrStdout().Write(art.Source)
		return err
	}
	return os.WriteFile(outFile, art.Source, 0o644)
}
