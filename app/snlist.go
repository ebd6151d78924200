package main

import (
	"fmt"
	"os"

	snlist "github.com/Mikxus/sn-list"
	"github.com/rs/zerolog"
)

type reading struct {
	sensor string
	value  int
}

func main() {
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger()

	// the whole working set lives in two fixed arrays, the list allocates nothing
	readings := [4]reading{
		{"tmp36", 22},
		{"tmp36", 23},
		{"bmp280", 1013},
		{"bmp280", 1012},
	}
	var nodes [4]snlist.Node[reading]
	for i := range nodes {
		nodes[i].Data = &readings[i]
	}

	list := snlist.New(snlist.Configure[reading]().Logger(logger))
	for i := range nodes {
		list.Append(&nodes[i])
	}
	fmt.Println("after appends:")
	printChain(list)

	list.Remove(&nodes[1])
	list.Remove(&nodes[2])
	fmt.Println("after removing two readings:")
	printChain(list)

	// a removed node is detached and can go right back in
	list.Append(&nodes[1])
	fmt.Println("after re-appending one of them:")
	printChain(list)

	stray := snlist.Node[reading]{Data: &readings[2]}
	if !list.Remove(&stray) {
		fmt.Println("stray node was never part of the chain")
	}
}

func printChain(list *snlist.List[reading]) {
	for node := list.Head(); node != nil; node = list.Next(node) {
		fmt.Printf("  %s: %d\n", node.Data.sensor, node.Data.value)
	}
}
