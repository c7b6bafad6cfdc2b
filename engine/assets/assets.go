package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/anima-editor/engine/assets/loaders"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

// AssetManager indexes the asset tree, loads files through per-type
// loaders and watches for changes. Change notifications are queued and
// handed to the main loop by DispatchChanges.
type AssetManager struct {
	assets  map[string]AssetInfo
	loaders map[metadata.ResourceType]Loader
	root    string

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	changed  map[string]metadata.ResourceType
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[metadata.ResourceType]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		changed:  make(map[string]metadata.ResourceType),
	}
	// Register loaders
	am.registerLoader(metadata.ResourceTypeShader, &loaders.ShaderLoader{})
	am.registerLoader(metadata.ResourceTypeImage, &loaders.TextureLoader{})
	am.registerLoader(metadata.ResourceTypeMesh, &loaders.ModelLoader{})
	return am, nil
}

func (am *AssetManager) Initialize(assetsDir string) error {
	am.root = filepath.Clean(assetsDir)
	if err := am.addRecursive(am.root); err != nil {
		return err
	}
	go am.start()
	core.LogInfo("Asset manager watching %s (%d assets indexed).", am.root, am.Count())
	return nil
}

func (am *AssetManager) Root() string {
	return am.root
}

func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	return nil
}

// addRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return errors.New("asset watcher already closed")
	}
	return am.watchRecursive(name, false)
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadAsset loads path with the loader registered for its type. Paths are
// resolved against the asset root when relative and not found as given.
func (am *AssetManager) LoadAsset(path string, params interface{}) (*metadata.Resource, error) {
	path = am.resolve(path)

	am.mutex.RLock()
	asset, exists := am.assets[path]
	am.mutex.RUnlock()
	if !exists {
		assetType := determineAssetType(path)
		if assetType == metadata.ResourceTypeNone {
			return nil, fmt.Errorf("unknown asset type: %s", path)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("asset not found: %s: %w", path, err)
		}
		asset = AssetInfo{Path: path, Type: assetType}
	}

	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %s", asset.Type)
	}
	res, err := loader.Load(path, params)
	if err != nil {
		return nil, err
	}

	asset.LastLoaded = time.Now()
	am.mutex.Lock()
	am.assets[path] = asset
	am.mutex.Unlock()
	return res, nil
}

func (am *AssetManager) UnloadAsset(resource *metadata.Resource) error {
	loader, ok := am.loaders[resource.Type]
	if !ok {
		return nil
	}
	return loader.Unload(resource)
}

// List returns the indexed paths of type t, sorted.
func (am *AssetManager) List(t metadata.ResourceType) []string {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	var out []string
	for p, a := range am.assets {
		if a.Type == t {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func (am *AssetManager) Count() int {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return len(am.assets)
}

// DispatchChanges fires EVENT_CODE_SHADER_CHANGED for every shader file
// written since the last call. Call it from the main loop.
func (am *AssetManager) DispatchChanges() int {
	am.mutex.Lock()
	pending := am.changed
	am.changed = make(map[string]metadata.ResourceType)
	am.mutex.Unlock()

	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	fired := 0
	for _, p := range paths {
		if pending[p] != metadata.ResourceTypeShader {
			continue
		}
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_SHADER_CHANGED,
			Data: &core.FileEvent{Path: p},
		})
		fired++
	}
	return fired
}

func (am *AssetManager) resolve(path string) string {
	path = filepath.Clean(path)
	if filepath.IsAbs(path) || am.root == "" {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(am.root, path)
}

func (am *AssetManager) start() {
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.watchRecursive(e.Name, false); err != nil {
						core.LogWarn(err.Error())
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name, true)
			}
			//Can't stat a deleted directory, so just pretend that it's always a directory and
			//try to remove from the watch list...  we really have no clue if it's a directory or not...
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				am.removeAsset(e.Name)
				_ = am.fsnotify.Remove(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch list.
func (am *AssetManager) watchRecursive(path string, unWatch bool) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if unWatch {
				return am.fsnotify.Remove(walkPath)
			}
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath, false)
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string, changed bool) {
	path = filepath.Clean(path)
	assetType := determineAssetType(path)
	if assetType == metadata.ResourceTypeNone {
		return
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	info, exists := am.assets[path]
	if !exists {
		info = AssetInfo{Path: path, Type: assetType}
	}
	am.assets[path] = info
	if changed {
		am.changed[path] = assetType
	}
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, filepath.Clean(path))
}

func determineAssetType(path string) metadata.ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vert", ".frag", ".glsl":
		return metadata.ResourceTypeShader
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".webp":
		return metadata.ResourceTypeImage
	case ".gltf", ".glb":
		return metadata.ResourceTypeMesh
	case ".txt", ".toml":
		return metadata.ResourceTypeText
	default:
		return metadata.ResourceTypeNone
	}
}
