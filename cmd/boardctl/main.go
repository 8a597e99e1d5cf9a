package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/goboard/internal/boardctl"
)

func main() {

	addr := flag.String("a", "http://localhost:8000", "board server base URL")
	flag.Parse()

	if env := os.Getenv("BOARD_ADDRESS"); env != "" && !isFlagSet("a") {
		*addr = env
	}

	app := boardctl.NewApp(boardctl.NewClient(*addr), os.Stdin, os.Stdout)

	fmt.Println("boardctl - type 'help' for commands")
	boardctl.RunREPL(context.Background(), app, bufio.NewScanner(os.Stdin), os.Stdout)
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
