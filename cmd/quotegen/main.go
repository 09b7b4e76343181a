package main

import (
	"flag"
	"fmt"
	"os"

	"quotegen"
)

func main() {
	var (
		quote  = flag.String("quote", "", "quote text to render")
		name   = flag.String("name", "", "attribution shown under the quote")
		avatar = flag.String("avatar", "", "path to an avatar image; omit to generate one from -id and -name")
		id     = flag.Uint64("id", 0, "identity used to pick the generated avatar color")
		out    = flag.String("out", "quote.jpg", "output file")
	)
	flag.Parse()

	if *quote == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -quote <text> [-name <who>] [-avatar <file>] [-id <n>] [-out <file>]\n", os.Args[0])
		os.Exit(2)
	}

	var src quotegen.AvatarSource
	if *avatar != "" {
		src = quotegen.AvatarFile(*avatar)
	} else {
		src = quotegen.AvatarIdentity{ID: *id, Name: *name}
	}

	p := quotegen.NewProducer(quotegen.Config{})
	buf, err := p.MakeImage(quotegen.Card{
		Quote:       *quote,
		Attribution: *name,
		Avatar:      src,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, buf, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
