package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/mjm/mobcore-go/pkg/mobcore"
)

func main() {
	libPath := flag.String("lib", "", "explicit path to the mobcore shared library")
	flag.Parse()

	log.Printf("mobcore-go version: %s", mobcore.WrapperVersion())

	cfg := mobcore.Config{LibraryPath: *libPath}
	err := mobcore.Activate(cfg)
	if err != nil {
		if errors.Is(err, mobcore.ErrLoadFailed) {
			fmt.Printf("state: %s\n", mobcore.Default().State())
			fmt.Printf("native core unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected activation failure: %v", err)
	}

	session, ok := mobcore.ActiveSession()
	if !ok {
		log.Fatal("activation reported success but no session is available")
	}

	fmt.Printf("state: %s\n", mobcore.Default().State())
	fmt.Printf("library: %s\n", session.Library())
	fmt.Printf("native version: %s\n", session.NativeVersion())
}
