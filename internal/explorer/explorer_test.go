package explorer

import (
	"testing"
)

const (
	txHex   = "0x6d2f6f2c5e4b4a1f8b1b1d9b1e0c5e0f4c7a1a2b3c4d5e6f708192a3b4c5d6e7"
	wethHex = "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"
)

func TestTxHashStripsLogIndex(t *testing.T) {
	hash, err := TxHash(txHex + "#42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash.Hex() != txHex {
		t.Fatalf("hash mismatch: %s", hash.Hex())
	}
}

func TestTxHashInvalid(t *testing.T) {
	for _, id := range []string{"", "0x1234", "nothex#1", "0x" + txHex[2:] + "ff"} {
		if _, err := TxHash(id); err == nil {
			t.Fatalf("expected error for %q", id)
		}
	}
}

func TestLinks(t *testing.T) {
	links, err := New("https://etherscan.io/")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if got := links.Tx(txHex + "#3"); got != "https://etherscan.io/tx/"+txHex {
		t.Fatalf("tx link mismatch: %s", got)
	}
	if got := links.Address("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"); got != "https://etherscan.io/address/"+wethHex {
		t.Fatalf("address link mismatch: %s", got)
	}
	if got := links.Address("pool one"); got != "https://etherscan.io/address/pool%20one" {
		t.Fatalf("fallback address link mismatch: %s", got)
	}
	if got := links.Tx("bad id"); got != "https://etherscan.io/tx/bad%20id" {
		t.Fatalf("fallback tx link mismatch: %s", got)
	}
}

func TestNewDefaultsAndValidation(t *testing.T) {
	links, err := New("")
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if links.base != DefaultBaseURL {
		t.Fatalf("default base mismatch: %s", links.base)
	}
	if _, err := New("etherscan.io"); err == nil {
		t.Fatalf("expected error for relative url")
	}
}
