// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	jmdict "github.com/ianlewis/go-jmdict"
	"github.com/ianlewis/go-jmdict/internal/config"
	"github.com/ianlewis/go-jmdict/internal/source"
	"github.com/ianlewis/go-jmdict/sink"
	"github.com/ianlewis/go-jmdict/tagstream"
)

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "language",
			Usage:   "write an output for `LANG` (a language code or \"all\")",
			Aliases: []string{"l"},
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Usage:   "write outputs to `DIR`",
			Aliases: []string{"o"},
		},
		&cli.StringFlag{
			Name:  "output-version",
			Usage: "write `VERSION` to the header of outputs",
		},
		&cli.BoolFlag{
			Name:               "quiet",
			Usage:              "do not print a report",
			Aliases:            []string{"q"},
			DisableDefaultText: true,
		},
	}
}

var wordsCommand = &cli.Command{
	Name:      "words",
	Usage:     "convert a JMdict release",
	ArgsUsage: "SOURCE",
	Flags: append(outputFlags(),
		&cli.BoolFlag{
			Name:               "common-only",
			Usage:              "only write words with a common spelling or reading",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "examples",
			Usage:              "include example sentences",
			DisableDefaultText: true,
		},
	),
	Action: func(c *cli.Context) error {
		if c.Bool("examples") {
			return runConvert(c, jmdict.WordsWithExamples)
		}
		return runConvert(c, jmdict.Words)
	},
}

var namesCommand = &cli.Command{
	Name:      "names",
	Usage:     "convert a JMnedict release",
	ArgsUsage: "SOURCE",
	Flags:     outputFlags(),
	Action: func(c *cli.Context) error {
		return runConvert(c, jmdict.Names)
	},
}

var kanjiCommand = &cli.Command{
	Name:      "kanji",
	Usage:     "convert a kanjidic2 release",
	ArgsUsage: "SOURCE",
	Flags:     outputFlags(),
	Action: func(c *cli.Context) error {
		return runConvert(c, jmdict.Kanji)
	},
}

func runConvert[P any, R sink.Record[R]](c *cli.Context, d *jmdict.Dictionary[P, R]) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: expected one source file", ErrFlagParse)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(c.App.ErrWriter, cfg.Log)

	specs := outputSpecs(c, cfg, d)
	if err := d.ValidateSpecs(specs); err != nil {
		return err
	}
	for _, spec := range specs {
		if err := os.MkdirAll(filepath.Dir(spec.Path), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	src, err := openSource(c.Args().First(), c.StringSlice("data-dir"))
	if err != nil {
		return err
	}
	defer src.Close()

	outputVersion := cfg.Version
	if c.IsSet("output-version") {
		outputVersion = c.String("output-version")
	}
	if outputVersion == "" {
		outputVersion = defaultOutputVersion()
	}

	opts := &jmdict.RunOptions{
		Version: outputVersion,
		Logger:  logger,
	}
	quiet := c.Bool("quiet")
	if !quiet {
		opts.Report = c.App.Writer
	}

	_, sinks, err := d.Run(c.Context, tagstream.NewXMLSource(src), jmdict.CreateSinks(specs), opts)
	if err != nil {
		// Partially written outputs are not valid JSON.
		for _, s := range sinks {
			if rmErr := os.Remove(s.Spec().Path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				logger.Warn("removing output",
					slog.String("path", s.Spec().Path),
					slog.String("error", rmErr.Error()),
				)
			}
		}
		return fmt.Errorf("converting %s: %w", src.Path, err)
	}

	if !quiet {
		fmt.Fprintln(c.App.Writer)
		jmdict.PrintSinks(c.App.Writer, sinks)
	}
	return nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	return cfg, nil
}

// outputSpecs returns the outputs to write. Each --language flag is one
// output. Without flags the outputs of the configuration are used.
func outputSpecs[P any, R sink.Record[R]](c *cli.Context, cfg *config.Config, d *jmdict.Dictionary[P, R]) []sink.Spec {
	commonOnly := d.CommonOnly && (c.Bool("common-only") || cfg.CommonOnly)

	if langs := c.StringSlice("language"); len(langs) > 0 {
		specs := make([]sink.Spec, 0, len(langs))
		for _, lang := range langs {
			specs = append(specs, d.SinkSpec(cfg.OutputDir, []string{lang}, commonOnly))
		}
		return specs
	}

	if len(cfg.Outputs) > 0 {
		return cfg.OutputSpecs(func(langs []string, commonOnly bool) string {
			return d.SinkSpec("", langs, commonOnly).Path
		})
	}

	return []sink.Spec{d.SinkSpec(cfg.OutputDir, cfg.Languages, commonOnly)}
}

// openSource opens path. Relative paths that do not exist are looked up in
// each of the data directories.
func openSource(path string, dirs []string) (*source.File, error) {
	f, err := source.Open(path)
	if err == nil || filepath.IsAbs(path) || !errors.Is(err, os.ErrNotExist) {
		return f, err
	}
	for _, dir := range dirs {
		dirFile, dirErr := source.Open(filepath.Join(dir, path))
		if dirErr == nil {
			return dirFile, nil
		}
		if !errors.Is(dirErr, os.ErrNotExist) {
			return nil, dirErr
		}
	}
	return nil, err
}
