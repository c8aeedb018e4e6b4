package main

import (
	"github.com/kerbaras/comicmeta/cmd/comicmeta"
)

func main() {
	cmd.Execute()
}
