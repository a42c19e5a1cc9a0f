package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"

	"github.com/bpol9/b-tree-with-delete/btree"
	"github.com/bpol9/b-tree-with-delete/cli"
)

var branchFactor *int
var shouldSeed *bool
var seedNumRecords *int
var verbose *bool

func seedTreeWithTestRecords(t *btree.Tree[string]) {
	for i := 0; i < *seedNumRecords; i++ {
		t.Insert(faker.Word() + faker.Word())
	}
}

func main() {
	setupFlags()

	if *verbose {
		btree.Log.SetLevel(logrus.DebugLevel)
	}

	tree, err := btree.New[string](*branchFactor)
	if err != nil {
		log.Fatal(err)
	}

	if *shouldSeed {
		seedTreeWithTestRecords(tree)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.New(scanner, tree)
	demo.Start()
}

func setupFlags() {
	branchFactor = flag.Int("branch-factor", 2, "Branch factor of the tree; the degree is twice this value.")
	shouldSeed = flag.Bool("seed", false, "Seed the tree using keys created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of keys to seed the tree with upon startup.")
	verbose = flag.Bool("verbose", false, "Trace structural operations (splits, donations, merges).")
	flag.Usage = func() {
		fmt.Println("\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
