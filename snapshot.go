package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const snapshotFileName = ".comp_stack.toml"

type snapshot struct {
	Stack []string `toml:"stack"`
}

// loadSnapshot reads a stack saved by saveSnapshot; a missing file yields an
// empty stack.
func loadSnapshot(path string) ([]string, error) {
	var snap snapshot
	if _, err := toml.DecodeFile(path, &snap); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to read stack snapshot %v: %w", path, err)
	}
	return snap.Stack, nil
}

func saveSnapshot(path string, stack []string) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	if stack == nil {
		stack = []string{}
	}
	return toml.NewEncoder(f).Encode(snapshot{Stack: stack})
}
