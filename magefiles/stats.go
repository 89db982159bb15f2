//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// pkgStats counts Go lines in one directory.
type pkgStats struct {
	Prod int `json:"prod"`
	Test int `json:"test"`
}

// Stats prints Go lines of code per package directory, plus totals, as JSON.
func Stats() error {
	perPkg := map[string]*pkgStats{}
	var total pkgStats

	err := filepath.WalkDir(".", func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			switch path {
			case "vendor", ".git", binaryDir, "magefiles", "_examples":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		count, err := countLines(path)
		if err != nil {
			return nil
		}
		dir := filepath.ToSlash(filepath.Dir(path))
		s, ok := perPkg[dir]
		if !ok {
			s = &pkgStats{}
			perPkg[dir] = s
		}
		if strings.HasSuffix(path, "_test.go") {
			s.Test += count
			total.Test += count
		} else {
			s.Prod += count
			total.Prod += count
		}
		return nil
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(map[string]any{
		"packages": perPkg,
		"total":    total,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
