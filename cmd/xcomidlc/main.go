// Command xcomidlc is the thin driver CLI around the xcomidl parser and
// rule engine (spec.md §6's "Driver CLI"). Code emission itself is out
// of this core's scope; this driver only parses every input and,
// optionally, dumps the resulting hint stream and repository for
// inspection.
package main

import (
	"log"
	"os"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/lukeod/xcomidl/parser"
	"github.com/lukeod/xcomidl/types"
)

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:]))
}

// run parses every positional IDL path with the given include paths,
// printing a diagnostic and continuing to the next file on failure
// (spec.md §7's "driver appends it to a messages sequence and continues
// with the next input file"). It returns the process exit status.
func run(args []string) int {
	var includePaths []string
	var emitOptions []string
	var idlPaths []string
	dump := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-I":
			i++
			if i >= len(args) {
				log.Printf("error: -I requires a path argument")
				return 1
			}
			includePaths = append(includePaths, args[i])
		case strings.HasPrefix(arg, "-I") && len(arg) > 2:
			includePaths = append(includePaths, arg[2:])
		case arg == "-dump":
			dump = true
		case strings.HasPrefix(arg, "-"):
			// Any other flag is a pass-through option for the (out of
			// scope) emitter — collected but not interpreted here.
			emitOptions = append(emitOptions, arg)
		default:
			idlPaths = append(idlPaths, arg)
		}
	}

	if len(idlPaths) == 0 {
		log.Printf("error: no input files")
		return 1
	}

	status := 0
	for _, path := range idlPaths {
		repo := types.NewRepository()
		p := parser.New(includePaths, repo)

		hints, err := p.Parse(path)
		if err != nil {
			log.Printf("%v", err)
			status = 1
			continue
		}

		if dump {
			repr.Println(hints)
			repr.Println(repo.All())
		}

		if len(emitOptions) > 0 {
			log.Printf("note: emitter options %v collected but not interpreted by this core", emitOptions)
		}
	}
	return status
}
