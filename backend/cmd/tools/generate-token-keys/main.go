package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
)

// generateKey returns n random bytes, base64 encoded.
func generateKey(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func main() {
	size := flag.Int("bytes", 64, "key size in bytes")
	flag.Parse()

	access, err := generateKey(*size)
	if err != nil {
		log.Fatalf("Failed to generate access token key: %v", err)
	}
	refresh, err := generateKey(*size)
	if err != nil {
		log.Fatalf("Failed to generate refresh token key: %v", err)
	}

	fmt.Println("Add these to your config/private.yaml:")
	fmt.Printf("access_token_key: \"%s\"\n", access)
	fmt.Printf("refresh_token_key: \"%s\"\n", refresh)
	fmt.Println()
	fmt.Println("Rotating a key invalidates every token signed with it.")
}
