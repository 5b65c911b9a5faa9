// Command amfkeygen generates an AMF key pair for one party role and prints
// it as JSON, mirroring the teacher's tools/keygen/main.go.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/amf-labs/amf-franking/amf"
	"github.com/amf-labs/amf-franking/group"
)

type serializedKeyPair struct {
	Role       string `json:"role"`
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
}

func main() {
	role := flag.String("role", "sender", "Party role: sender, recipient, or judge")
	outputFile := flag.String("output", "", "Output file for the key pair (optional; stdout if empty)")
	flag.Parse()

	r, err := parseRole(*role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	keyPair, err := amf.KeyGen(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating key pair: %v\n", err)
		os.Exit(1)
	}

	serialized := serializedKeyPair{
		Role:       r.String(),
		PrivateKey: base64.StdEncoding.EncodeToString(keyPair.Private.Marshal()),
		PublicKey:  base64.StdEncoding.EncodeToString(keyPair.Public.Marshal()),
	}

	jsonData, err := json.MarshalIndent(serialized, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error serializing key pair: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, jsonData, 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Key pair written to %s\n", *outputFile)
		return
	}
	fmt.Println(string(jsonData))
}

func parseRole(s string) (group.Role, error) {
	switch strings.ToLower(s) {
	case "sender":
		return group.RoleSender, nil
	case "recipient":
		return group.RoleRecipient, nil
	case "judge":
		return group.RoleJudge, nil
	default:
		return 0, fmt.Errorf("unknown role %q (want sender, recipient, or judge)", s)
	}
}
