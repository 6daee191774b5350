// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vecgen generates the fixed-width vector and matrix types.
//
// Usage:
//
//	vecgen                 # rewrite simd/*.gen.go and mat/*.gen.go under .
//	vecgen --out ../repo   # rewrite under another module root
//	vecgen --check         # fail if any generated file is stale
//
// Or via go:generate from the module root:
//
//	//go:generate go run ./cmd/vecgen
//
// The method tables in methods.go are templates: every vector method is a
// thin wrapper over a kernel in package simd that works on lane slices, so
// one row produces the method for every width of every family.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Generator writes the generated files below OutputDir.
type Generator struct {
	OutputDir string
	// Check compares instead of writing and fails on the first stale file.
	Check bool
	// DryRun lists the files and their sizes without writing.
	DryRun bool
}

// generatedFile is one output, relative to the module root.
type generatedFile struct {
	path string
	src  []byte
}

func (g *Generator) files() []generatedFile {
	var files []generatedFile
	for _, c := range vectorClasses() {
		files = append(files, generatedFile{filepath.Join("simd", c.file), emitVectorClass(c, Widths)})
	}
	files = append(files,
		generatedFile{filepath.Join("simd", "aliases.gen.go"), emitAliases(Widths)},
		generatedFile{filepath.Join("mat", "matrices.gen.go"), emitMatrices()},
	)
	return files
}

// Run generates every file, reporting progress on cmd.
func (g *Generator) Run(cmd *cobra.Command) error {
	for _, f := range g.files() {
		path := filepath.Join(g.OutputDir, f.path)
		src, err := format(path, f.src)
		if err != nil {
			return err
		}
		switch {
		case g.DryRun:
			cmd.Printf("%s\t%d bytes\n", path, len(src))
		case g.Check:
			old, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrap(err, "check")
			}
			if !bytes.Equal(old, src) {
				return errors.Errorf("%s is stale; run vecgen", path)
			}
		default:
			if err := os.WriteFile(path, src, 0o644); err != nil {
				return errors.Wrapf(err, "write %s", f.path)
			}
			cmd.Printf("wrote %s\n", path)
		}
	}
	return nil
}

func newRootCommand() *cobra.Command {
	g := &Generator{}
	cmd := &cobra.Command{
		Use:           "vecgen",
		Short:         "Generate the fixed-width vector and matrix types",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.Run(cmd)
		},
	}
	cmd.Flags().StringVarP(&g.OutputDir, "out", "o", ".", "module root to write into")
	cmd.Flags().BoolVar(&g.Check, "check", false, "fail if a generated file differs instead of writing it")
	cmd.Flags().BoolVar(&g.DryRun, "dry-run", false, "list the files that would be written")
	cmd.MarkFlagsMutuallyExclusive("check", "dry-run")
	return cmd
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vecgen: %v\n", err)
		os.Exit(1)
	}
}
