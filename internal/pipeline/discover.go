package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/texorg/internal/config"
)

// FileKind classifies a source file by its extension.
type FileKind int

const (
	KindOther FileKind = iota // Unsupported; warned about and left alone.
	KindImage                 // Texture image; decoded and organized.
	KindMesh                  // Exported mesh; names the output folder.
)

// Supported image extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".png": true,
	".jpg": true,
}

const meshExtension = ".fbx"

// SourceFile is one regular file found directly in the source folder.
type SourceFile struct {
	Name string // Base name as found on disk.
	Path string
	Ext  string // Extension as found on disk, e.g. ".PNG".
	Size int64
	Kind FileKind
}

// Classify returns the kind of a file name. Extensions are compared
// case-insensitively.
func Classify(name string) FileKind {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case imageExtensions[ext]:
		return KindImage
	case ext == meshExtension:
		return KindMesh
	default:
		return KindOther
	}
}

// Discover lists the regular files directly inside dir, sorted by name for
// deterministic processing order. Symlinks are followed. Subfolders
// (including a previous run's output) are not descended into.
func Discover(dir string) ([]SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []SourceFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		info, err := os.Stat(path)
		if err != nil {
			// Removed since ReadDir, or a dangling symlink.
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, SourceFile{
			Name: e.Name(),
			Path: path,
			Ext:  filepath.Ext(e.Name()),
			Size: info.Size(),
			Kind: Classify(e.Name()),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// OutputFolderName picks the name of the output folder: the explicit
// subfolder if set, else the stem of the first mesh, else
// [config.DefaultSubfolder]. A mesh stem that is not a plain folder name
// (e.g. "." from "..fbx") falls back to the default so the output root
// always stays inside the source folder.
func OutputFolderName(subfolder string, files []SourceFile) string {
	if subfolder != "" {
		return subfolder
	}
	for _, f := range files {
		if f.Kind != KindMesh {
			continue
		}
		if stem := strings.TrimSuffix(f.Name, f.Ext); config.IsPlainFolderName(stem) {
			return stem
		}
		break
	}
	return config.DefaultSubfolder
}

// countKind returns how many files are of kind k.
func countKind(files []SourceFile, k FileKind) int {
	n := 0
	for _, f := range files {
		if f.Kind == k {
			n++
		}
	}
	return n
}
