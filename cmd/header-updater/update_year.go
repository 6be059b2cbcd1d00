// Copyright 2026 Sonic Labs
// This file is part of padfsm.
//
// padfsm is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padfsm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with padfsm. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/padfsm/logger"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

var (
	rootFlag = cli.PathFlag{
		Name:  "root",
		Usage: "workspace whose license headers are updated",
		Value: ".",
	}
	yearFlag = cli.IntFlag{
		Name:  "year",
		Usage: "year written into the headers; 0 increments the current one",
	}
)

// updateYearCommand updates the license headers of a workspace
var updateYearCommand = cli.Command{
	Action: updateYearAction,
	Name:   "year",
	Usage:  "Updates the year in the license header of all .go files in the workspace",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&rootFlag,
		&yearFlag,
	},
}

// directories never touched by the updater
var excludedDirs = []string{"_examples", "testdata", "vendor"}

var (
	reHeader = regexp.MustCompile(`// Copyright (\d{4}) Sonic Labs`)
	reCLI    = regexp.MustCompile(`Copyright:\s*"\(c\)\s*(\d{4})\s+Sonic Labs"`)
)

func updateYearAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "header-updater")
	root := ctx.Path(rootFlag.Name)
	updated, err := updateYear(root, ctx.Int(yearFlag.Name))
	if err != nil {
		return err
	}
	log.Noticef("Updated %d files in %s", updated, root)
	return nil
}

// updateYear walks through files and updates copyright years. A year of
// zero increments the year found in each header. It returns the number of
// files changed.
func updateYear(root string, year int) (int, error) {
	next := func(found string) int {
		if year != 0 {
			return year
		}
		y, _ := strconv.Atoi(found)
		return y + 1
	}

	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			for _, ex := range excludedDirs {
				if d.Name() == ex {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.Contains(d.Name(), "mock") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "cannot read %s", path)
		}
		content := string(data)

		updated := reHeader.ReplaceAllStringFunc(content, func(match string) string {
			matches := reHeader.FindStringSubmatch(match)
			return fmt.Sprintf("// Copyright %d Sonic Labs", next(matches[1]))
		})
		updated = reCLI.ReplaceAllStringFunc(updated, func(match string) string {
			matches := reCLI.FindStringSubmatch(match)
			return fmt.Sprintf(`Copyright: "(c) %d Sonic Labs"`, next(matches[1]))
		})

		if updated == content {
			return nil
		}
		count++
		return os.WriteFile(path, []byte(updated), 0644)
	})
	return count, err
}
