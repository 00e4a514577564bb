// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The splaytree developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/splaytree/internal/log"
	"github.com/btcsuite/splaytree/splay"
	"github.com/davecgh/go-spew/spew"
)

const (
	datasetInts   = "ints"
	datasetHosts  = "hosts"
	datasetHashes = "hashes"
)

// knownDatasets lists the datasets splaydemo is able to load.
var knownDatasets = []string{datasetInts, datasetHosts, datasetHashes}

// intKeys are put into the ints dataset in order, each mapped to itself.
var intKeys = []int{5, 9, 13, 11, 1}

// hostEntries are put into the hosts and hashes datasets in order.  Repeated
// hosts overwrite the earlier address.
var hostEntries = []struct {
	host string
	addr string
}{
	{"www.cs.princeton.edu", "128.112.136.11"},
	{"www.cs.princeton.edu", "128.112.136.12"},
	{"www.cs.princeton.edu", "128.112.136.13"},
	{"www.princeton.edu", "128.112.128.15"},
	{"www.yale.edu", "130.132.143.21"},
	{"www.simpsons.com", "209.052.165.60"},
}

// compareHashes orders hashes by their raw bytes.
func compareHashes(a, b chainhash.Hash) int {
	return bytes.Compare(a[:], b[:])
}

// demo ties a loaded tree to the function used to turn command line keys into
// keys of the tree.
type demo[K, V any] struct {
	name     string
	tree     *splay.Tree[K, V]
	parseKey func(string) (K, error)
}

func newIntsDemo() *demo[int, int] {
	tree := splay.New[int, int]()
	for _, key := range intKeys {
		tree.Put(key, key)
	}
	return &demo[int, int]{
		name: datasetInts,
		tree: tree,
		parseKey: func(s string) (int, error) {
			key, err := strconv.Atoi(s)
			if err != nil {
				return 0, fmt.Errorf("invalid int key %q: %w", s, err)
			}
			return key, nil
		},
	}
}

func newHostsDemo() *demo[string, string] {
	tree := splay.New[string, string]()
	for _, entry := range hostEntries {
		tree.Put(entry.host, entry.addr)
	}
	return &demo[string, string]{
		name: datasetHosts,
		tree: tree,
		parseKey: func(s string) (string, error) {
			return s, nil
		},
	}
}

// newHashesDemo keys every host by the hash of its name, so both the command
// line keys and the values are host names.
func newHashesDemo() *demo[chainhash.Hash, string] {
	tree := splay.NewFunc[chainhash.Hash, string](compareHashes)
	for _, entry := range hostEntries {
		tree.Put(chainhash.HashH([]byte(entry.host)), entry.host)
	}
	return &demo[chainhash.Hash, string]{
		name: datasetHashes,
		tree: tree,
		parseKey: func(s string) (chainhash.Hash, error) {
			return chainhash.HashH([]byte(s)), nil
		},
	}
}

// run applies the configured removals then lookups and writes the resulting
// shape of the tree to w.
func (d *demo[K, V]) run(cfg *config, w io.Writer) error {
	size := d.tree.Size()
	log.DemoLog.Infof("Loaded %d %s from the %s dataset", size,
		log.PickNoun(size, "entry", "entries"), d.name)

	for _, s := range cfg.Remove {
		key, err := d.parseKey(s)
		if err != nil {
			return err
		}
		d.tree.Remove(key)
		log.DemoLog.Debugf("Removed %s", s)
	}

	for _, s := range cfg.Lookup {
		key, err := d.parseKey(s)
		if err != nil {
			return err
		}
		value, ok := d.tree.Get(key)
		if !ok {
			fmt.Fprintf(w, "lookup %s: not found\n", s)
			continue
		}
		fmt.Fprintf(w, "lookup %s: %v\n", s, value)
	}

	fmt.Fprintf(w, "size: %d\n", d.tree.Size())
	fmt.Fprintf(w, "height: %d\n", d.tree.Height())
	fmt.Fprintf(w, "balanced: %v\n", d.tree.IsBalanced())

	traversals := []struct {
		name   string
		values []V
	}{
		{"preorder", d.tree.PreOrder()},
		{"inorder", d.tree.InOrder()},
		{"postorder", d.tree.PostOrder()},
		{"levelorder", d.tree.LevelOrder()},
	}
	for _, traversal := range traversals {
		if cfg.Dump {
			fmt.Fprintf(w, "%s:\n%s", traversal.name,
				spew.Sdump(traversal.values))
			continue
		}
		fmt.Fprintf(w, "%s: %v\n", traversal.name, traversal.values)
	}

	if cfg.Dump {
		fmt.Fprintln(w, "parents:")
		for _, key := range d.tree.Keys() {
			parent, _, ok := d.tree.Parent(key)
			if !ok {
				fmt.Fprintf(w, "  %v: root\n", key)
				continue
			}
			fmt.Fprintf(w, "  %v: %v\n", key, parent)
		}
	}

	return nil
}

// run loads the configured dataset and reports on it.
func run(cfg *config, w io.Writer) error {
	switch cfg.Dataset {
	case datasetInts:
		return newIntsDemo().run(cfg, w)
	case datasetHosts:
		return newHostsDemo().run(cfg, w)
	case datasetHashes:
		return newHashesDemo().run(cfg, w)
	}
	return fmt.Errorf("unknown dataset %q", cfg.Dataset)
}

// splaydemoMain is the real main function for splaydemo.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func splaydemoMain() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.CloseLogRotator()

	if err := run(cfg, os.Stdout); err != nil {
		log.DemoLog.Errorf("%v", err)
		return err
	}
	return nil
}

func main() {
	if err := splaydemoMain(); err != nil {
		os.Exit(1)
	}
}
