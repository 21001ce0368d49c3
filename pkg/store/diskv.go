package store

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const slotExt = ".json"

// Diskv keeps each slot in its own file under a base directory.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv creates a Diskv rooted at basePath.
func NewDiskv(basePath string) *Diskv {
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: slotToPathTransform,
		InverseTransform:  pathToSlotTransform,
		// Other processes write the same files; reads must hit disk.
		CacheSizeMax: 0,
	}), basePath: basePath}
}

// BasePath is the directory holding the slot files.
func (p *Diskv) BasePath() string {
	return p.basePath
}

func (p *Diskv) Read(slot string) ([]byte, error) {
	val, err := p.d.Read(slot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (p *Diskv) Write(slot string, data []byte) error {
	return p.d.Write(slot, data)
}

// Keys lists the slots present on disk.
func (p *Diskv) Keys(ctx context.Context) []string {
	var keys []string
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func slotToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{FileName: s + slotExt}
}

func pathToSlotTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, slotExt)
}

// slotForPath maps a file under the base path back to its slot name.
func (p *Diskv) slotForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." || strings.ContainsRune(rel, filepath.Separator) {
		return ""
	}
	if !strings.HasSuffix(rel, slotExt) {
		return ""
	}
	return strings.TrimSuffix(rel, slotExt)
}
