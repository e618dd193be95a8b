package headpress

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// imageDimensions reads the width and height from the header of a local
// image. src is a site path under /public/; other sources are not probed
// and yield ok == false.
func imageDimensions(staticDir, src string) (width, height int, ok bool, err error) {
	rel, found := strings.CutPrefix(src, "/public/")
	if !found || strings.Contains(rel, "..") {
		return 0, 0, false, nil
	}
	f, err := os.Open(filepath.Join(staticDir, filepath.FromSlash(rel)))
	if err != nil {
		return 0, 0, false, fmt.Errorf("open image %s: %w", src, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, false, fmt.Errorf("decode image %s: %w", src, err)
	}
	return cfg.Width, cfg.Height, true, nil
}
