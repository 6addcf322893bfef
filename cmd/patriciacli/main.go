// Command patriciacli is a small line-oriented tool for poking at a
// string-keyed PATRICIA trie from a terminal: load a word list, then
// issue put/get/del/prefix/nearest/range/dump commands from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/flocode/diypatricia/analyzer"
	"github.com/flocode/diypatricia/patricia"
)

func main() {
	wordFile := flag.String("file", "", "optional newline-delimited word list to preload")
	flag.Parse()

	logger := log.New(os.Stderr, "patriciacli: ", log.LstdFlags)
	trie := patricia.New[string, string](analyzer.StringKeyAnalyzer{})

	if *wordFile != "" {
		n, err := loadWords(trie, *wordFile)
		if err != nil {
			logger.Fatalf("loading %s: %v", *wordFile, err)
		}
		logger.Printf("loaded %d words from %s", n, *wordFile)
	}

	runLoop(trie, os.Stdin, os.Stdout, logger)
}

func loadWords(trie *patricia.Trie[string, string], path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		trie.Put(word, word)
		n++
	}
	return n, scanner.Err()
}

func runLoop(trie *patricia.Trie[string, string], in *os.File, out *os.File, logger *log.Logger) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "put":
			if len(args) < 1 {
				fmt.Fprintln(out, "usage: put <key> [value]")
				continue
			}
			value := args[0]
			if len(args) > 1 {
				value = strings.Join(args[1:], " ")
			}
			_, had := trie.Put(args[0], value)
			fmt.Fprintf(out, "ok (replaced=%v)\n", had)

		case "get":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: get <key>")
				continue
			}
			if v, ok := trie.Get(args[0]); ok {
				fmt.Fprintln(out, v)
			} else {
				fmt.Fprintln(out, "(not found)")
			}

		case "del":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: del <key>")
				continue
			}
			_, ok := trie.Remove(args[0])
			fmt.Fprintf(out, "removed=%v\n", ok)

		case "prefix":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: prefix <key>")
				continue
			}
			view := trie.GetPrefixedBy(args[0])
			for _, e := range view.Entries() {
				fmt.Fprintf(out, "%s = %s\n", e.Key, e.Value)
			}

		case "nearest":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: nearest <key>")
				continue
			}
			if e, ok := trie.Select(args[0]); ok {
				fmt.Fprintf(out, "%s = %s\n", e.Key, e.Value)
			} else {
				fmt.Fprintln(out, "(empty trie)")
			}

		case "range":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: range <from> <to>")
				continue
			}
			for _, e := range trie.SubMap(args[0], args[1]).Entries() {
				fmt.Fprintf(out, "%s = %s\n", e.Key, e.Value)
			}

		case "dump":
			trie.ForEach(func(e patricia.Entry[string, string]) {
				fmt.Fprintf(out, "%s = %s\n", e.Key, e.Value)
			})

		default:
			fmt.Fprintf(out, "unknown command %q\n", cmd)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Printf("reading stdin: %v", err)
	}
}
