// Command abicodec builds a Contract ABI call payload from a function
// signature and a JSON array of argument values.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	abi "github.com/relaychain/abi"
)

func main() {
	sig := flag.String("sig", "", `function signature, e.g. "transfer(address,uint256)"`)
	argsJSON := flag.String("args", "[]", "JSON array of argument values")
	selectorOnly := flag.Bool("selector-only", false, "print only the 4-byte method selector")
	flag.Parse()

	if *sig == "" {
		fmt.Fprintln(os.Stderr, `usage: abicodec -sig "name(type,...)" [-args '[...]'] [-selector-only]`)
		os.Exit(2)
	}

	if *selectorOnly {
		sel := abi.MethodSelector(*sig)
		fmt.Println(hex.EncodeToString(sel[:]))
		return
	}

	var rawArgs []any
	if err := json.Unmarshal([]byte(*argsJSON), &rawArgs); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -args JSON: %v\n", err)
		os.Exit(1)
	}

	_, types, err := abi.ParseSignature(*sig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	values, err := abi.CoerceJSONArgs(types, rawArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	payload, err := abi.BuildPayload(*sig, values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Println(payload)
}
