package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Versioned assets, relative to the static directory
var versionedAssets = []string{
	"css/slider.css",
	"css/admin.css",
	"js/slider.js",
	"js/admin-categories.js",
}

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string, log *zap.Logger) {
	assetVersionsOnce.Do(func() {
		assetVersions = make(map[string]string, len(versionedAssets))
		for _, asset := range versionedAssets {
			version := computeFileHash(filepath.Join(staticDir, asset), log)
			if version == "" {
				version = "1"
			}
			assetVersions[asset] = version
		}
		log.Info("Asset versions initialized", zap.Int("files", len(assetVersions)))
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string, log *zap.Logger) string {
	file, err := os.Open(path)
	if err != nil {
		log.Warn("Failed to open file for hashing", zap.String("path", path), zap.Error(err))
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Warn("Failed to hash file", zap.String("path", path), zap.Error(err))
		return ""
	}

	// Return first 8 chars of the hash for brevity
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the cache busting version of a static asset
func AssetVersion(asset string) string {
	if version, ok := assetVersions[asset]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the versioned URL of a static asset
func AssetURL(asset string) string {
	return "/static/" + asset + "?v=" + AssetVersion(asset)
}
