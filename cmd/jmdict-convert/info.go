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
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	jmdict "github.com/ianlewis/go-jmdict"
	"github.com/ianlewis/go-jmdict/metadata"
	"github.com/ianlewis/go-jmdict/tagstream"
)

var infoCommand = &cli.Command{
	Name:      "info",
	Usage:     "print the metadata of a release",
	ArgsUsage: "SOURCE",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "dict",
			Usage:   "read SOURCE as `DICT` (words, names, kanji)",
			Aliases: []string{"t"},
			Value:   "words",
		},
		&cli.BoolFlag{
			Name:               "tags",
			Usage:              "print the tags of the release",
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one source file", ErrFlagParse)
		}

		src, err := openSource(c.Args().First(), c.StringSlice("data-dir"))
		if err != nil {
			return err
		}
		defer src.Close()

		meta, err := readMetadata(c.String("dict"), tagstream.NewXMLSource(src))
		if err != nil {
			return fmt.Errorf("reading %s: %w", src.Path, err)
		}

		jmdict.PrintMetadata(c.App.Writer, meta)
		if c.Bool("tags") {
			fmt.Fprintln(c.App.Writer)
			tbl := table.New("Tag", "Description").WithWriter(c.App.Writer)
			for _, name := range meta.EntityNames() {
				desc, _ := meta.Entity(name)
				tbl.AddRow(name, desc)
			}
			tbl.Print()
		}
		return nil
	},
}

func readMetadata(dict string, src tagstream.Source) (*metadata.Metadata, error) {
	switch dict {
	case "words":
		return jmdict.ReadMetadata(jmdict.Words.Grammar, src)
	case "names":
		return jmdict.ReadMetadata(jmdict.Names.Grammar, src)
	case "kanji":
		return jmdict.ReadMetadata(jmdict.Kanji.Grammar, src)
	default:
		return nil, fmt.Errorf("%w: dictionary %q", ErrUnsupported, dict)
	}
}
