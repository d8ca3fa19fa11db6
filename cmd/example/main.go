package main

import (
	"fmt"
	"log"

	"searchlab/pkg/common"
	"searchlab/pkg/core"
	"searchlab/pkg/core/bst"
	"searchlab/pkg/core/hashtable"
	"searchlab/pkg/core/rbtree"
)

func main() {
	records := []common.Record{
		{ID: 1, Key: "Name0", Value: 13.5},
		{ID: 2, Key: "Name1", Value: 47.1},
		{ID: 3, Key: "Name0", Value: 88.0},
		{ID: 4, Key: "Name2", Value: 5.9},
	}

	table, err := hashtable.New(len(records))
	if err != nil {
		log.Fatalf("Failed to create hash table: %v", err)
	}
	indexes := []core.Index{bst.NewTree(), rbtree.NewTree(), table}

	for _, rec := range records {
		for _, idx := range indexes {
			idx.Insert(rec)
		}
	}

	for _, idx := range indexes {
		fmt.Printf("%s search(Name0):\n", idx.Name())
		for _, r := range idx.Search("Name0") {
			fmt.Printf("  %s\n", r)
		}
	}
	fmt.Printf("Hash collisions while loading: %d\n", table.Collisions())
}
