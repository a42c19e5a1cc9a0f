// Package cli drives an interactive demo session against a B-tree.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bpol9/b-tree-with-delete/btree"
)

type Cli struct {
	scanner    *bufio.Scanner
	tree       *btree.Tree[string]
	visualizer *btree.Visualizer[string]
}

func New(s *bufio.Scanner, t *btree.Tree[string]) *Cli {
	v := &btree.Visualizer[string]{
		Tree: t,
	}
	return &Cli{scanner: s, tree: t, visualizer: v}
}

func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Print(`
B-Tree CLI

Available Commands:
  INSERT <key>    Insert a key into the B-Tree
  DEL <key>       Remove a key from the B-Tree
  SEARCH <key>    Check whether key is present in the B-Tree
  PRINT           Render the current tree
  EXIT            Terminate this session

`)
}

func (c *Cli) printPrompt() {
	fmt.Print("> ")
}

func (c *Cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Printf("Unknown command \"%s\"\n", command)
	case "insert":
		c.processInsertCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "search":
		c.processSearchCommand(fields[1:])
	case "print":
		fmt.Println(c.visualizer.Visualize())
	case "exit":
		os.Exit(0)
	}
}

func (c *Cli) processInsertCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: INSERT <key>")
		return
	}
	if !c.tree.Insert(args[0]) {
		fmt.Println("Key already present.")
		return
	}
	fmt.Println(c.visualizer.Visualize())
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: DEL <key>")
		return
	}
	if !c.tree.Delete(args[0]) {
		fmt.Println("Key not found.")
		return
	}
	fmt.Println(c.visualizer.Visualize())
}

func (c *Cli) processSearchCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: SEARCH <key>")
		return
	}
	if c.tree.Search(args[0]) {
		fmt.Println("Found.")
	} else {
		fmt.Println("Key not found.")
	}
}
