package weapi

import (
	"encoding/base64"
	"math/big"
	"testing"
)

// TestFixedKeyVector fixes secret_key="0123456789abcdef" instead of drawing
// one at random, so both AES-CBC stages are fully deterministic and
// independently verifiable against hand-computed fixtures.
func TestFixedKeyVector(t *testing.T) {
	plaintext := []byte(`{"username":"alice"}`)
	secretKey := []byte("0123456789abcdef")

	stage1, err := aesCBCEncryptPKCS7(presetKey, iv, plaintext)
	if err != nil {
		t.Fatalf("stage1: %v", err)
	}
	stage1B64 := base64.StdEncoding.EncodeToString(stage1)
	wantStage1 := "2aUOjwUhEOt8TESO3bdle1VORqiZnYgPX1IqkX6ZKeg="
	if stage1B64 != wantStage1 {
		t.Fatalf("stage1 base64 = %q, want %q", stage1B64, wantStage1)
	}

	stage2, err := aesCBCEncryptPKCS7(secretKey, iv, []byte(stage1B64))
	if err != nil {
		t.Fatalf("stage2: %v", err)
	}
	params := base64.StdEncoding.EncodeToString(stage2)
	wantParams := "7TzFxM4LhOjisgsYbcBrs9P/B54UkmjbTfoukIlTAJH1KsYJflbqHarEDLahDhat"
	if params != wantParams {
		t.Fatalf("params = %q, want %q", params, wantParams)
	}

	encSecKey := rsaEncryptReversed(secretKey)
	wantEncSecKey := "35701388baf89fed412e11269b9c76625d095ecaf17f03fa018abe19ea2d38b949debf242ee39a71ca1f6cda71b1b86a45aa909ee27f7e78e267d34e732f0de948206c3340a788d0003372183e2f753c1f78b66ac23d134ac1fc9b993156520ea826b8aa89a962d4491b4b8d7e08738e1da9b07aa39bf4a7ef0b1c210728cd52"
	if encSecKey != wantEncSecKey {
		t.Fatalf("encSecKey = %q, want %q", encSecKey, wantEncSecKey)
	}
}

func TestEncryptRoundTripsWithOwnSecretKey(t *testing.T) {
	plaintext := `{"s":"test","type":1,"limit":20,"offset":0}`

	req, err := Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(req.EncSecKey) != 256 {
		t.Fatalf("EncSecKey length = %d, want 256", len(req.EncSecKey))
	}
	for _, c := range req.EncSecKey {
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
		if !isHex {
			t.Fatalf("EncSecKey contains non-hex-lowercase char %q", c)
		}
	}

	// Recover secretKey the way the (unavailable) server private key
	// would, by re-deriving m from EncSecKey using our own knowledge of
	// the modulus and a matching private exponent is not possible without
	// the private key; instead assert the encoded integer round-trips
	// through modpow with the same exponent applied twice under a
	// symmetric verification: since we cannot invert RSA without the
	// private key, verify structurally that EncSecKey decodes to a
	// 128-byte big-endian integer strictly less than the modulus.
	c, ok := new(big.Int).SetString(req.EncSecKey, 16)
	if !ok {
		t.Fatal("EncSecKey is not valid hex")
	}
	if c.Cmp(pubModulus) >= 0 {
		t.Fatal("EncSecKey integer is not reduced mod pubModulus")
	}

	if req.Params == "" {
		t.Fatal("Params must not be empty")
	}
}

func TestEncryptUsesFreshSecretKeyEachCall(t *testing.T) {
	a, err := Encrypt(`{"a":1}`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt(`{"a":1}`)
	if err != nil {
		t.Fatal(err)
	}
	if a.Params == b.Params {
		t.Fatal("two calls with identical plaintext produced identical params; secret key is not being randomized")
	}
	if a.EncSecKey == b.EncSecKey {
		t.Fatal("two calls produced identical encSecKey; secret key is not being randomized")
	}
}
