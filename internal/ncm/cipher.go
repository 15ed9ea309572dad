package ncm

import (
	"bytes"
	"crypto/aes"
	"fmt"
)

// coreKey decrypts the RC4 key block ("hzHRAmso5kInbaxW" ASCII).
var coreKey = []byte{0x68, 0x7A, 0x48, 0x52, 0x41, 0x6D, 0x73, 0x6F, 0x35, 0x6B, 0x49, 0x6E, 0x62, 0x61, 0x78, 0x57}

// metaKey decrypts the metadata block ("#14ljk_!\]&0U<'(" ASCII).
var metaKey = []byte{0x23, 0x31, 0x34, 0x6C, 0x6A, 0x6B, 0x5F, 0x21, 0x5C, 0x5D, 0x26, 0x30, 0x55, 0x3C, 0x27, 0x28}

// rc4SBoxSize is the width of the RC4 permutation table.
const rc4SBoxSize = 256

// aesECBDecrypt decrypts ciphertext with AES-128 in ECB mode and strips
// PKCS#7 padding.
func aesECBDecrypt(key, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("ncm: aes cipher: %w", err)
	}
	blockSize := block.BlockSize()
	size := len(ciphertext)
	if size == 0 || size%blockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext not block-aligned", ErrBadPadding)
	}

	plaintext := make([]byte, size)
	for start := 0; start < size; start += blockSize {
		end := start + blockSize
		block.Decrypt(plaintext[start:end], ciphertext[start:end])
	}

	padLen := int(plaintext[size-1])
	if padLen == 0 || padLen > blockSize || padLen > size {
		return nil, fmt.Errorf("%w: invalid pad length", ErrBadPadding)
	}
	if !bytes.Equal(plaintext[size-padLen:], bytes.Repeat([]byte{byte(padLen)}, padLen)) {
		return nil, fmt.Errorf("%w: pad bytes mismatch", ErrBadPadding)
	}
	return plaintext[:size-padLen], nil
}

// rc4KeyBox runs the RC4 key-scheduling algorithm over key and returns the
// resulting 256-byte permutation. The box is never mutated afterwards;
// keystream bytes are a pure function of (box, position).
func rc4KeyBox(key []byte) [rc4SBoxSize]byte {
	var box [rc4SBoxSize]byte
	for i := range box {
		box[i] = byte(i)
	}

	keyLen := len(key)
	j := 0
	for i := 0; i < rc4SBoxSize; i++ {
		j = (j + int(box[i]) + int(key[i%keyLen])) & 0xFF
		box[i], box[j] = box[j], box[i]
	}
	return box
}

// keystreamByte computes the position-indexed keystream byte at audio
// offset n. This is NOT standard RC4 PRGA: the index into the box is
// derived from n directly and the box is never advanced, so keystream(n)
// is a pure function of (box, n).
func keystreamByte(box *[rc4SBoxSize]byte, n int) byte {
	p := (n + 1) & 0xFF
	sp := int(box[p])
	return box[(sp+int(box[(sp+p)&0xFF]))&0xFF]
}
