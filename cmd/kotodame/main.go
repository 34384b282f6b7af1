package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/kuroneko-lab/kotodame"
)

func main() {
	dictPath := flag.String("dict", "", "path to a CSV domain dictionary (surface,reading,feature,description,category)")
	bannedPath := flag.String("banned", "", "path to a JSON array of banned surfaces")
	patternsPath := flag.String("patterns", "", "path to a JSON array of tag-prefix rules")
	verbose := flag.Bool("v", false, "print extraction details")
	flag.Parse()

	text := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(text) == "" {
		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		text = strings.Join(lines, " ")
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "usage: kotodame [flags] <japanese text>")
		os.Exit(2)
	}

	cfg, err := kotodame.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *patternsPath != "" {
		if cfg.Patterns, err = kotodame.LoadPatternSet(*patternsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *bannedPath != "" {
		if cfg.Banned, err = kotodame.LoadBannedWords(*bannedPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *dictPath != "" {
		if cfg.Dict, err = kotodame.LoadDictionary(*dictPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen, err := kotodame.NewGenerator(cfg, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res, err := gen.Generate(context.Background(), text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		kotodame.PrintResultDetails(res)
		return
	}
	if res.Text == "" {
		fmt.Fprintln(os.Stderr, "no suitable phrase found")
		os.Exit(1)
	}
	fmt.Println(res.Text)
}
