package crosspath

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/crosspath/pkg/env"
	"github.com/arthur-debert/crosspath/pkg/errors"
)

const (
	testHome = "/home/rustdevuser"
	testTemp = "/var/tmp"
)

func posixMaterializer() *Materializer {
	return NewMaterializer(env.Static{Home: testHome, Temp: testTemp}, "linux")
}

func windowsMaterializer() *Materializer {
	return NewMaterializer(env.Static{
		Home: `C:\Users\me`,
		Temp: `C:\Users\me\AppData\Local\Temp`,
	}, "windows")
}

// requireCode fails the test unless err carries code
func requireCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.IsErrorCode(err, code), "want %s, got %v", code, err)
}
