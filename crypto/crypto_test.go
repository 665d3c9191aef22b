package crypto_test

import (
	"testing"

	"github.com/RozimuhammadIsomiddinov/scannerPOS/crypto"
)

func TestCrypto(t *testing.T) {
	t.Run("compare_password", func(t *testing.T) {
		password := "ScannerPOS_!"
		hashed := crypto.HashPassword(password)
		err := crypto.ComparePassword(hashed, password)
		if err != nil {
			t.Fatal(err)
		}
	})
	t.Run("wrong_password", func(t *testing.T) {
		hashed := crypto.HashPassword("correct")
		err := crypto.ComparePassword(hashed, "incorrect")
		if err == nil {
			t.Fatal("expected compare to fail for a wrong password")
		}
	})
}
