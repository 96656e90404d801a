package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/toml/cmds"
	"github.com/reusee/toml/nets"
)

var inputs []string

func init() {
	cmds.Define("-input", cmds.Func(func(pattern string) {
		if pattern == "-" || isURL(pattern) {
			inputs = append(inputs, pattern)
			return
		}
		paths, err := filepath.Glob(pattern)
		if err != nil {
			// ignore
			inputs = append(inputs, pattern)
			return
		}
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.IsDir() {
				continue
			}
			inputs = append(inputs, path)
		}
	}).Desc("add a document to check: a file glob, an http(s) URL, or - for stdin"))
}

func isURL(name string) bool {
	return strings.HasPrefix(name, "http://") ||
		strings.HasPrefix(name, "https://")
}

func readDocument(client nets.HTTPClient, name string) (string, error) {
	switch {

	case name == "-":
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", wrap(err)
		}
		return string(content), nil

	case isURL(name):
		resp, err := client.Get(name)
		if err != nil {
			return "", wrap(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != 200 {
			return "", wrap(fmt.Errorf("fetch %s: %s", name, resp.Status))
		}
		content, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", wrap(err)
		}
		return string(content), nil

	default:
		content, err := os.ReadFile(name)
		if err != nil {
			return "", wrap(err)
		}
		return string(content), nil
	}
}
