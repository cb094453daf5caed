package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kinterval/intervalmap"
)

// record is the on-disk representation of one stored range. The CLI is a
// one-shot process per invocation, so state round-trips through this file
// between runs rather than staying resident in memory.
type record struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
	Attr  string `json:"attr"`
}

func loadStore(path string) (*intervalmap.Tree[string], error) {
	tree := intervalmap.NewTree[string]()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return tree, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}
	if len(data) == 0 {
		return tree, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing store: %w", err)
	}
	for _, r := range records {
		if err := tree.Add(r.Start, r.End, r.Attr); err != nil {
			return nil, fmt.Errorf("replaying store: %w", err)
		}
	}
	return tree, nil
}

func saveStore(path string, tree *intervalmap.Tree[string]) error {
	records := make([]record, 0, tree.Len())
	tree.Iterate(func(start, end uint64, attr string) bool {
		records = append(records, record{Start: start, End: end, Attr: attr})
		return true
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	return nil
}
