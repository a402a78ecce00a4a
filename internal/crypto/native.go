// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/pbkdf2"

	"github.com/Baconcat1912/encryptify/models"
)

// opensslMagic is the header `openssl enc` writes before the salt.
// The native executor produces and consumes the exact same layout:
//
//	"Salted__" ‖ salt (8 bytes) ‖ ciphertext
//
// so files are interchangeable between the two executors.
const opensslMagic = "Salted__"

const saltLen = 8

// NativeExecutor performs transforms in-process with the standard library
// cipher suite. It satisfies the same [Executor] contract as the external
// process implementation and writes byte-compatible output to
// `openssl enc -pbkdf2 -iter N`, including key and IV derivation
// (PBKDF2-HMAC-SHA256 over the passphrase and the 8-byte file salt) and
// PKCS#7 padding.
type NativeExecutor struct{}

// NewNativeExecutor constructs a [NativeExecutor].
func NewNativeExecutor() *NativeExecutor {
	return &NativeExecutor{}
}

// Run implements [Executor].
//
// Failures that prevent the transform from beginning (unknown algorithm is
// reported as [ErrUnknownAlgorithm]; an unreadable input wraps
// [ErrExecutorStart]) are distinguished from transform failures, which are
// reported as [*ExitError] — most prominently a failed decrypt caused by a
// wrong passphrase or iteration count, surfaced with the same "bad decrypt"
// diagnostic openssl prints.
func (n *NativeExecutor) Run(ctx context.Context, req Request) error {
	alg, ok := Lookup(req.Algorithm)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, req.Algorithm)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutorStart, err)
	}

	input, err := os.ReadFile(req.InputPath)
	if err != nil {
		return fmt.Errorf("%w: read input: %v", ErrExecutorStart, err)
	}

	var output []byte
	switch req.Mode {
	case models.Decrypt:
		output, err = decryptBlob(input, req.Passphrase, req.Iterations, alg.KeyLen)
	default:
		output, err = encryptBlob(input, req.Passphrase, req.Iterations, alg.KeyLen)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(req.OutputPath, output, 0o600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// deriveKeyIV stretches the passphrase into key material the way
// `openssl enc -pbkdf2` does: one PBKDF2-HMAC-SHA256 run producing
// keyLen+16 bytes, split into the cipher key and the CBC IV.
func deriveKeyIV(passphrase string, salt []byte, iterations, keyLen int) (key, iv []byte) {
	material := pbkdf2.Key([]byte(passphrase), salt, iterations, keyLen+aes.BlockSize, sha256.New)
	return material[:keyLen], material[keyLen:]
}

func encryptBlob(plain []byte, passphrase string, iterations, keyLen int) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: generate salt: %v", ErrExecutorStart, err)
	}

	key, iv := deriveKeyIV(passphrase, salt, iterations, keyLen)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := padPKCS7(plain, aes.BlockSize)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)

	blob := make([]byte, 0, len(opensslMagic)+saltLen+len(ct))
	blob = append(blob, opensslMagic...)
	blob = append(blob, salt...)
	blob = append(blob, ct...)
	return blob, nil
}

func decryptBlob(blob []byte, passphrase string, iterations, keyLen int) ([]byte, error) {
	header := len(opensslMagic) + saltLen
	if len(blob) < header || string(blob[:len(opensslMagic)]) != opensslMagic {
		return nil, &ExitError{Code: 1, Stderr: "bad magic number"}
	}
	salt := blob[len(opensslMagic):header]
	ct := blob[header:]
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, &ExitError{Code: 1, Stderr: "bad decrypt"}
	}

	key, iv := deriveKeyIV(passphrase, salt, iterations, keyLen)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ct)

	plain, ok := unpadPKCS7(padded, aes.BlockSize)
	if !ok {
		// A padding mismatch almost always means the passphrase or the
		// iteration count was wrong.
		return nil, &ExitError{Code: 1, Stderr: "bad decrypt"}
	}
	return plain, nil
}

func padPKCS7(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func unpadPKCS7(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, false
		}
	}
	return data[:len(data)-padLen], true
}
