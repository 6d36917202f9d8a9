package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/mathforgames/engine/assets/loaders"
	"github.com/spaghettifunk/mathforgames/engine/core"
)

// Number of pending reloads kept before new ones are dropped.
const reloadBufferSize = 16

type AssetInfo struct {
	Path       string
	Type       loaders.ResourceType
	LastLoaded time.Time
}

// AssetManager indexes the files of an assets directory, loads them with
// the loader registered for their type and watches them for changes.
// Changed scene files are reloaded on the watcher goroutine and handed
// out through Reloads.
type AssetManager struct {
	assets  map[string]AssetInfo
	loaders map[loaders.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	reloads  chan *loaders.Resource
	errors   chan error
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[loaders.ResourceType]Loader),
		fsnotify: fsWatch,
		reloads:  make(chan *loaders.Resource, reloadBufferSize),
		errors:   make(chan error, reloadBufferSize),
		done:     make(chan struct{}),
	}

	// Register loaders
	am.registerLoader(loaders.ResourceTypeScene, &loaders.SceneLoader{})
	am.registerLoader(loaders.ResourceTypeConfig, &loaders.ConfigLoader{})
	am.registerLoader(loaders.ResourceTypeSprite, &loaders.SpriteLoader{})
	return am, nil
}

// Initialize indexes assetsDir and starts watching it.
func (am *AssetManager) Initialize(assetsDir string) error {
	if err := am.addRecursive(assetsDir); err != nil {
		return err
	}
	go am.start()
	core.LogInfo("watching assets in %s", assetsDir)
	return nil
}

// AddRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return errors.New("asset watcher already closed")
	}
	return am.watchRecursive(name, false)
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType loaders.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// Reloads delivers scene files that changed on disk.
func (am *AssetManager) Reloads() <-chan *loaders.Resource {
	return am.reloads
}

// Errors delivers watcher errors.
func (am *AssetManager) Errors() <-chan error {
	return am.errors
}

// Assets returns the indexed files of the given type.
func (am *AssetManager) Assets(resourceType loaders.ResourceType) []AssetInfo {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	var out []AssetInfo
	for _, a := range am.assets {
		if a.Type == resourceType {
			out = append(out, a)
		}
	}
	return out
}

// LoadAsset loads an indexed file with the loader of its type. params is
// passed through to the loader.
func (am *AssetManager) LoadAsset(path string, params interface{}) (*loaders.Resource, error) {
	path = filepath.Clean(path)

	am.mutex.Lock()
	asset, exists := am.assets[path]
	if exists {
		// Load or reload asset from disk
		asset.LastLoaded = time.Now()
		am.assets[path] = asset // Update the loaded time
	}
	am.mutex.Unlock()
	if !exists {
		return nil, fmt.Errorf("asset not found: %s: %w", path, os.ErrNotExist)
	}

	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type %s: %w", asset.Type, core.ErrUnsupportedAsset)
	}
	return loader.Load(path, params)
}

func (am *AssetManager) UnloadAsset(asset *loaders.Resource) error {
	loader, ok := am.loaders[asset.Type]
	if !ok {
		return fmt.Errorf("no loader registered for asset type %s: %w", asset.Type, core.ErrUnsupportedAsset)
	}
	return loader.Unload(asset)
}

// Shutdown stops the watcher goroutine and closes the channels.
func (am *AssetManager) Shutdown() error {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	return nil
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
						core.LogWarn("%s", err)
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if am.handleFileEvent(filepath.Clean(e.Name)) == loaders.ResourceTypeScene {
					am.reloadScene(filepath.Clean(e.Name))
				}
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				am.removeAsset(filepath.Clean(e.Name))
			}

		case e, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%s", e)
			select {
			case am.errors <- e:
			default:
			}

		case <-am.done:
			am.fsnotify.Close()
			close(am.reloads)
			close(am.errors)
			return
		}
	}
}

func (am *AssetManager) reloadScene(path string) {
	res, err := am.LoadAsset(path, nil)
	if err != nil {
		// editors often write in several steps, the next event will retry
		core.LogWarn("reloading %s: %s", path, err)
		return
	}
	select {
	case am.reloads <- res:
		core.LogInfo("scene %s reloaded from %s", res.Name, path)
	default:
		core.LogWarn("dropping reload of %s, nobody is reading", path)
	}
}

// watchRecursive adds all directories under the given one to the watch list
// and indexes the files found on the way.
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
		am.handleFileEvent(filepath.Clean(walkPath))
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) loaders.ResourceType {
	assetType := loaders.DetermineResourceType(path)
	if assetType == loaders.ResourceTypeNone {
		return assetType
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	if _, ok := am.assets[path]; !ok {
		am.assets[path] = AssetInfo{
			Path: path,
			Type: assetType,
		}
	}
	return assetType
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
}
