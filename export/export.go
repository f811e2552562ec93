// Package export writes raw catalog records to disk.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/vidinfo-cli/vidinfo/catalog"
	"github.com/vidinfo-cli/vidinfo/filesystem"
	"github.com/vidinfo-cli/vidinfo/log"
	"github.com/vidinfo-cli/vidinfo/util"
)

const extension = ".json"

// fallbackName is used when neither the filename nor the video id yields a usable name.
const fallbackName = "video"

// Name returns the sanitized file name, with extension, that File would write for filename.
// An empty filename falls back to the video id.
func Name(video *catalog.Video, filename string) string {
	name := filename
	if strings.EqualFold(filepath.Ext(name), extension) {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	name = util.SanitizeFilename(name)
	if name == "" && video != nil {
		name = util.SanitizeFilename(video.ID)
	}

	if name == "" {
		name = fallbackName
	}

	return name + extension
}

// File writes the raw record, indented by two spaces, to dir and returns the written path.
// A nil record is logged and skipped.
func File(video *catalog.Video, dir, filename string) (string, error) {
	if video == nil {
		log.Warn("export skipped: no record")
		return "", nil
	}

	raw, err := video.Raw()
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("indent record: %w", err)
	}
	buf.WriteByte('\n')

	path := filepath.Join(dir, Name(video, filename))
	if err := filesystem.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("export %s: %w", video.ID, err)
	}

	log.Infof("exported %s to %s (%s)", video.ID, path, humanize.Bytes(uint64(buf.Len())))
	return path, nil
}

// Size returns the human readable size of the file at path.
func Size(path string) string {
	stat, err := filesystem.API().Stat(path)
	if err != nil {
		return ""
	}
	return humanize.Bytes(uint64(stat.Size()))
}
