package services

import (
	"os"
	"testing"

	"nishan.dev/configs/configslog"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}
