package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retailcore/staffd/pkg/cryptox"
)

func TestMain(m *testing.M) {
	// Password hashing needs a pepper file; point it at a throwaway one
	pepperPath := filepath.Join(os.TempDir(), "staffd-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	code := m.Run()
	os.Remove(pepperPath)
	os.Exit(code)
}
