//go:build ffmpeg_embedded

package ffmpeg

import (
	"embed"
	"errors"
	"io"
	"io/fs"
)

// Release archives placed under assets/ at build time ship inside the
// executable; enabled with -tags ffmpeg_embedded.
//
//go:embed assets/*
var bundled embed.FS

func openEmbeddedAsset(name string) (io.ReadCloser, bool, error) {
	file, err := bundled.Open("assets/" + name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return file, true, nil
}
