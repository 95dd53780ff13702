package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"

	"github.com/graeme-hill/exprtree-go/lib"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("exprtree: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		log.Fatalf("read error: %v", err)
	}
	line = strings.TrimRight(line, "\r\n")

	if err := lib.Report(os.Stdout, line); err != nil {
		log.Fatal(err)
	}
}
