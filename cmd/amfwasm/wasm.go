//go:build js && wasm

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"syscall/js"

	"github.com/amf-labs/amf-franking/amf"
	"github.com/amf-labs/amf-franking/group"
)

// Initialize registers the AMF bindings on the global JS object.
func Initialize() {
	js.Global().Set("AMF", js.ValueOf(
		map[string]interface{}{
			"generateKeyPair": js.FuncOf(GenerateKeyPair),
			"frank":           js.FuncOf(Frank),
			"verify":          js.FuncOf(Verify),
			"judge":           js.FuncOf(Judge),
		},
	))
}

// GenerateKeyPair generates an AMF key pair for a role ("sender",
// "recipient", or "judge").
func GenerateKeyPair(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResponse("generateKeyPair requires a role argument")
	}
	role, err := parseRole(args[0].String())
	if err != nil {
		return errorResponse(err.Error())
	}

	keyPair, err := group.KeyGen(role, rand.Reader)
	if err != nil {
		return errorResponse(fmt.Sprintf("failed to generate key pair: %v", err))
	}

	return js.ValueOf(map[string]interface{}{
		"success":    true,
		"role":       role.String(),
		"privateKey": hex.EncodeToString(keyPair.Private.Marshal()),
		"publicKey":  hex.EncodeToString(keyPair.Public.Marshal()),
	})
}

// Frank franks a message, returning the hex-encoded signature.
func Frank(this js.Value, args []js.Value) interface{} {
	if len(args) < 5 {
		return errorResponse("frank requires skS, pkS, pkR, pkJ, and message")
	}

	skS, err := decodePrivateKey(args[0].String())
	if err != nil {
		return errorResponse(err.Error())
	}
	pkS, err := decodePublicKey(args[1].String())
	if err != nil {
		return errorResponse(err.Error())
	}
	pkR, err := decodePublicKey(args[2].String())
	if err != nil {
		return errorResponse(err.Error())
	}
	pkJ, err := decodePublicKey(args[3].String())
	if err != nil {
		return errorResponse(err.Error())
	}
	message := []byte(args[4].String())

	sig, err := amf.Frank(skS, pkS, pkR, pkJ, message)
	if err != nil {
		return errorResponse(fmt.Sprintf("frank failed: %v", err))
	}

	encoded, err := sig.Marshal()
	if err != nil {
		return errorResponse(fmt.Sprintf("failed to serialize signature: %v", err))
	}

	return js.ValueOf(map[string]interface{}{
		"success":   true,
		"signature": hex.EncodeToString(encoded),
	})
}

// Verify checks a franked signature as the recipient.
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) < 6 {
		return errorResponse("verify requires skR, pkS, pkR, pkJ, message, and signature")
	}
	return runCheck(args, func(skR group.PrivateKey, pkS, pkR, pkJ group.PublicKey, m []byte, sig amf.Signature) bool {
		return amf.Verify(skR, pkS, pkR, pkJ, m, sig)
	})
}

// Judge checks a franked signature as the judge.
func Judge(this js.Value, args []js.Value) interface{} {
	if len(args) < 6 {
		return errorResponse("judge requires skJ, pkS, pkR, pkJ, message, and signature")
	}
	return runCheck(args, func(skJ group.PrivateKey, pkS, pkR, pkJ group.PublicKey, m []byte, sig amf.Signature) bool {
		return amf.Judge(skJ, pkS, pkR, pkJ, m, sig)
	})
}

func runCheck(args []js.Value, check func(group.PrivateKey, group.PublicKey, group.PublicKey, group.PublicKey, []byte, amf.Signature) bool) interface{} {
	sk, err := decodePrivateKey(args[0].String())
	if err != nil {
		return errorResponse(err.Error())
	}
	pkS, err := decodePublicKey(args[1].String())
	if err != nil {
		return errorResponse(err.Error())
	}
	pkR, err := decodePublicKey(args[2].String())
	if err != nil {
		return errorResponse(err.Error())
	}
	pkJ, err := decodePublicKey(args[3].String())
	if err != nil {
		return errorResponse(err.Error())
	}
	message := []byte(args[4].String())

	sigBytes, err := hex.DecodeString(args[5].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid signature encoding: %v", err))
	}
	sig, err := amf.Unmarshal(sigBytes)
	if err != nil {
		return errorResponse(fmt.Sprintf("failed to deserialize signature: %v", err))
	}

	return js.ValueOf(map[string]interface{}{
		"success": true,
		"valid":   check(sk, pkS, pkR, pkJ, message, sig),
	})
}

func parseRole(s string) (group.Role, error) {
	switch s {
	case "sender":
		return group.RoleSender, nil
	case "recipient":
		return group.RoleRecipient, nil
	case "judge":
		return group.RoleJudge, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

func decodePrivateKey(s string) (group.PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return group.PrivateKey{}, fmt.Errorf("invalid private key encoding: %w", err)
	}
	return group.PrivateKeyFromBytes(b)
}

func decodePublicKey(s string) (group.PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return group.PublicKey{}, fmt.Errorf("invalid public key encoding: %w", err)
	}
	return group.PublicKeyFromBytes(b)
}

func errorResponse(message string) interface{} {
	return js.ValueOf(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
