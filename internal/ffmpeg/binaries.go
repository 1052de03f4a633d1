// Package ffmpeg locates the ffmpeg and ffprobe executables the media
// and export packages shell out to. Resolution order: explicit env
// override, binaries already on PATH, a previously installed copy in
// the user cache, an archive embedded at build time, and finally a
// download of the ffbinaries release for this platform.
package ffmpeg

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	bundledVersion = "6.1"
	releaseBaseURL = "https://github.com/ffbinaries/ffbinaries-prebuilt/releases/download"

	envFFmpeg  = "SUBEDIT_FFMPEG_PATH"
	envFFprobe = "SUBEDIT_FFPROBE_PATH"
)

// BinaryPaths holds the resolved executable locations.
type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

func (p BinaryPaths) complete() bool {
	return p.FFmpeg != "" && p.FFprobe != ""
}

var (
	resolveOnce sync.Once
	resolved    BinaryPaths
	resolveErr  error
)

// Ensure resolves both binaries, installing them if necessary. The
// result is computed once per process.
func Ensure() (BinaryPaths, error) {
	resolveOnce.Do(func() {
		resolved, resolveErr = resolve()
	})
	return resolved, resolveErr
}

func FFmpegPath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFmpeg, nil
}

func FFprobePath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFprobe, nil
}

func resolve() (BinaryPaths, error) {
	paths := BinaryPaths{
		FFmpeg:  os.Getenv(envFFmpeg),
		FFprobe: os.Getenv(envFFprobe),
	}
	if paths.complete() {
		return paths, nil
	}

	if paths.FFmpeg == "" {
		paths.FFmpeg, _ = exec.LookPath("ffmpeg")
	}
	if paths.FFprobe == "" {
		paths.FFprobe, _ = exec.LookPath("ffprobe")
	}
	if paths.complete() {
		return paths, nil
	}

	return install()
}

// install places the bundled binaries into the user cache, preferring
// an embedded archive over a network download.
func install() (BinaryPaths, error) {
	asset, err := platformAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return BinaryPaths{}, err
	}

	dir := installDir()
	paths := BinaryPaths{
		FFmpeg:  filepath.Join(dir, "ffmpeg"+exeSuffix()),
		FFprobe: filepath.Join(dir, "ffprobe"+exeSuffix()),
	}
	if installed(paths) {
		return paths, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return BinaryPaths{}, fmt.Errorf("create ffmpeg cache dir: %w", err)
	}

	fromEmbedded, err := extractEmbedded(asset, dir)
	if err != nil {
		return BinaryPaths{}, err
	}
	if !fromEmbedded {
		if err := download(asset, dir); err != nil {
			return BinaryPaths{}, err
		}
	}

	if !installed(paths) {
		return BinaryPaths{}, errors.New("ffmpeg binaries missing after extraction")
	}
	if err := markExecutable(paths.FFmpeg, paths.FFprobe); err != nil {
		return BinaryPaths{}, err
	}
	return paths, nil
}

func installDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil || cacheDir == "" {
		cacheDir = os.TempDir()
	}
	return filepath.Join(
		cacheDir, "subedit", "ffmpeg",
		bundledVersion, runtime.GOOS, runtime.GOARCH,
	)
}

func installed(p BinaryPaths) bool {
	return isFile(p.FFmpeg) && isFile(p.FFprobe)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}

func markExecutable(paths ...string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	for _, p := range paths {
		if err := os.Chmod(p, 0o755); err != nil {
			return fmt.Errorf("chmod %s: %w", filepath.Base(p), err)
		}
	}
	return nil
}

// platformAsset names the ffbinaries release archive for the platform.
func platformAsset(goos, goarch string) (string, error) {
	var variant string
	switch goos + "/" + goarch {
	case "linux/amd64":
		variant = "linux-64"
	case "linux/arm64":
		variant = "linux-arm-64"
	case "darwin/amd64":
		variant = "macos-64"
	case "windows/amd64":
		variant = "win-64"
	default:
		return "", fmt.Errorf("no bundled ffmpeg for %s/%s", goos, goarch)
	}
	return fmt.Sprintf("ffmpeg-%s-%s.zip", bundledVersion, variant), nil
}

func download(asset, dir string) error {
	url := fmt.Sprintf("%s/v%s/%s", releaseBaseURL, bundledVersion, asset)
	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("download ffmpeg bundle: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download ffmpeg bundle: unexpected status %s", resp.Status)
	}
	return extractArchive(resp.Body, dir)
}

func extractEmbedded(asset, dir string) (bool, error) {
	reader, ok, err := openEmbeddedAsset(asset)
	if err != nil || !ok {
		return ok, err
	}
	defer func() { _ = reader.Close() }()
	return true, extractArchive(reader, dir)
}

// extractArchive spools the zip to disk (the zip reader needs random
// access) and pulls out just the two binaries.
func extractArchive(src io.Reader, dir string) error {
	tmp, err := os.CreateTemp("", "subedit-ffmpeg-*.zip")
	if err != nil {
		return fmt.Errorf("create temp archive: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, src); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	zr, err := zip.OpenReader(tmp.Name())
	if err != nil {
		return fmt.Errorf("open ffmpeg archive: %w", err)
	}
	defer func() { _ = zr.Close() }()

	var haveFFmpeg, haveFFprobe bool
	for _, file := range zr.File {
		base := strings.TrimSuffix(strings.ToLower(filepath.Base(file.Name)), ".exe")
		switch base {
		case "ffmpeg":
			haveFFmpeg = true
		case "ffprobe":
			haveFFprobe = true
		default:
			continue
		}
		if err := writeZipEntry(file, filepath.Join(dir, base+exeSuffix())); err != nil {
			return err
		}
	}

	if !haveFFmpeg || !haveFFprobe {
		return errors.New("ffmpeg archive missing required binaries")
	}
	return nil
}

func writeZipEntry(file *zip.File, dest string) error {
	reader, err := file.Open()
	if err != nil {
		return fmt.Errorf("open ffmpeg archive entry: %w", err)
	}
	defer func() { _ = reader.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create ffmpeg binary: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, reader); err != nil {
		return fmt.Errorf("write ffmpeg binary: %w", err)
	}
	return nil
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
