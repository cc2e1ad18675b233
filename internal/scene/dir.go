package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsSceneFile reports whether name has a scene file extension.
func IsSceneFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadDir loads every scene file in dir, keyed by scene name. Scene names
// must be unique within the directory.
func LoadDir(dir string) (map[string]*Scene, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenes directory: %w", err)
	}

	scenes := make(map[string]*Scene)
	for _, entry := range entries {
		if entry.IsDir() || !IsSceneFile(entry.Name()) {
			continue
		}
		sc, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		if sc.Name == "" {
			return nil, fmt.Errorf("scene in %s has no name", entry.Name())
		}
		if _, exists := scenes[sc.Name]; exists {
			return nil, fmt.Errorf("duplicate scene name %q in %s", sc.Name, entry.Name())
		}
		scenes[sc.Name] = sc
	}
	return scenes, nil
}
