// Package weapi implements the encryption envelope required to speak
// NetEase Cloud Music's web API: a double AES-128-CBC pass followed by a
// textbook (no padding) RSA encryption of the inner AES key.
package weapi

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

// presetKey is the fixed first-pass AES key used by every WEAPI client.
var presetKey = []byte("0CoJUm6Qyw8W8jud")

// iv is the fixed AES-CBC initialization vector for both encryption passes.
var iv = []byte("0102030405060708")

// pubExponent is the WEAPI RSA public exponent.
const pubExponent = 0x10001

// pubModulusHex is the 1024-bit RSA public modulus published by the
// NetEase web client, embedded verbatim.
const pubModulusHex = "" +
	"e0b509f6259df8642dbc35662901477df22677ec152b5ff68ace615bb7b72515" +
	"2b3ab17a876aea8a5aa76d2e417629ec4ee341f56135fccf695280104e0312ec" +
	"bda92557c93870114af6c9d05c4f7f0c3685b7a46bee255932575cce10b424d" +
	"813cfe4875d3e82047b97ddef52741d546b8e289dc6935b3ece0462db0a22b8e7"

var pubModulus = mustParseHexBigInt(pubModulusHex)

func mustParseHexBigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("weapi: invalid RSA modulus constant")
	}
	return n
}

// secretKeyCharset is the alphabet random secret keys are drawn from.
const secretKeyCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const secretKeyLen = 16

// Request is the (params, encSecKey) pair a WEAPI POST body carries.
type Request struct {
	Params    string
	EncSecKey string
}

// Encrypt implements the four-step WEAPI envelope over a JSON payload:
//  1. AES-128-CBC(presetKey) the plaintext, base64 it.
//  2. AES-128-CBC(secretKey) that base64 string, base64 it again -> Params.
//  3. Reverse secretKey's bytes, zero-pad left to 128 bytes, RSA-encrypt
//     (no padding) with the fixed public key -> hex -> EncSecKey.
//
// secretKey is drawn fresh from a CSPRNG on every call and never persisted.
func Encrypt(plaintext string) (Request, error) {
	secretKey, err := randomSecretKey()
	if err != nil {
		return Request{}, fmt.Errorf("weapi: generating secret key: %w", err)
	}

	stage1, err := aesCBCEncryptPKCS7(presetKey, iv, []byte(plaintext))
	if err != nil {
		return Request{}, err
	}
	stage1B64 := base64.StdEncoding.EncodeToString(stage1)

	stage2, err := aesCBCEncryptPKCS7(secretKey, iv, []byte(stage1B64))
	if err != nil {
		return Request{}, err
	}
	params := base64.StdEncoding.EncodeToString(stage2)

	encSecKey := rsaEncryptReversed(secretKey)

	return Request{Params: params, EncSecKey: encSecKey}, nil
}

func randomSecretKey() ([]byte, error) {
	key := make([]byte, secretKeyLen)
	idx := make([]byte, secretKeyLen)
	if _, err := rand.Read(idx); err != nil {
		return nil, err
	}
	for i, b := range idx {
		key[i] = secretKeyCharset[int(b)%len(secretKeyCharset)]
	}
	return key, nil
}

func aesCBCEncryptPKCS7(key, iv, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("weapi: aes cipher: %w", err)
	}
	bs := block.BlockSize()
	padLen := bs - len(plaintext)%bs
	padded := make([]byte, len(plaintext)+padLen)
	copy(padded, plaintext)
	copy(padded[len(plaintext):], bytes.Repeat([]byte{byte(padLen)}, padLen))

	out := make([]byte, len(padded))
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(out, padded)
	return out, nil
}

// rsaEncryptReversed implements WEAPI's non-standard RSA step: the ASCII
// bytes of key are byte-reversed (not numerically reinterpreted),
// then treated as a big-endian integer zero-padded on the left to 128
// bytes, then raised to pubExponent mod pubModulus. No PKCS#1 padding is
// applied; a higher-level RSA "encrypt" routine would inject padding this
// protocol does not use.
func rsaEncryptReversed(key []byte) string {
	reversed := make([]byte, len(key))
	for i, b := range key {
		reversed[len(key)-1-i] = b
	}

	const modulusBytes = 128
	padded := make([]byte, modulusBytes)
	copy(padded[modulusBytes-len(reversed):], reversed)

	m := new(big.Int).SetBytes(padded)
	c := new(big.Int).Exp(m, big.NewInt(pubExponent), pubModulus)

	return fmt.Sprintf("%0256x", c)
}
