package gallery

import (
	"context"
	"path"
	"sort"
	"strings"
	"time"

	awsclient "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/aws"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/config"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/logger"
)

// Storage is the read-only object store behind the gallery.
type Storage interface {
	ListObjects(ctx context.Context, bucket, prefix string) ([]awsclient.ObjectSummary, error)
	PresignGetObject(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
}

// Image is one listed object. URI is what a user pastes into the CarCheck
// intent; URL is a temporary browser link.
type Image struct {
	Key          string    `json:"key"`
	URI          string    `json:"uri"`
	URL          string    `json:"url"`
	LastModified time.Time `json:"lastModified"`
}

// Section groups the images under one prefix, newest first.
type Section struct {
	Title  string  `json:"title"`
	Prefix string  `json:"prefix"`
	Images []Image `json:"images"`
}

type Gallery struct {
	storage    Storage
	bucket     string
	prefixes   []string
	extensions []string
	expiry     time.Duration
	logger     logger.Logger
}

func New(cfg config.StorageConfig, storage Storage, log logger.Logger) *Gallery {
	exts := make([]string, 0, len(cfg.ImageExtensions))
	for _, e := range cfg.ImageExtensions {
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, strings.ToLower(e))
	}
	expiry := config.GetDuration(cfg.PresignExpiry)
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &Gallery{
		storage:    storage,
		bucket:     cfg.Bucket,
		prefixes:   cfg.Prefixes,
		extensions: exts,
		expiry:     expiry,
		logger:     log.WithFields(map[string]interface{}{"component": "gallery"}),
	}
}

// Bucket returns the configured bucket name; empty disables the gallery.
func (g *Gallery) Bucket() string {
	return g.bucket
}

// List returns one section per configured prefix in configuration order.
// A prefix without images yields a section with no images.
func (g *Gallery) List(ctx context.Context) ([]Section, error) {
	sections := make([]Section, 0, len(g.prefixes))
	for _, prefix := range g.prefixes {
		section, err := g.listPrefix(ctx, prefix)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, nil
}

func (g *Gallery) listPrefix(ctx context.Context, prefix string) (Section, error) {
	objects, err := g.storage.ListObjects(ctx, g.bucket, prefix)
	if err != nil {
		g.logger.Error("failed to list images", map[string]interface{}{"prefix": prefix, "error": err})
		return Section{}, err
	}

	images := make([]awsclient.ObjectSummary, 0, len(objects))
	for _, obj := range objects {
		if g.isImage(obj.Key) {
			images = append(images, obj)
		}
	}
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].LastModified.After(images[j].LastModified)
	})

	section := Section{Title: SectionTitle(prefix), Prefix: prefix, Images: make([]Image, 0, len(images))}
	for _, obj := range images {
		url, err := g.storage.PresignGetObject(ctx, g.bucket, obj.Key, g.expiry)
		if err != nil {
			g.logger.Error("failed to presign image", map[string]interface{}{"key": obj.Key, "error": err})
			return Section{}, err
		}
		section.Images = append(section.Images, Image{
			Key:          obj.Key,
			URI:          "s3://" + g.bucket + "/" + obj.Key,
			URL:          url,
			LastModified: obj.LastModified,
		})
	}

	g.logger.Debug("listed images", map[string]interface{}{
		"prefix":  prefix,
		"objects": len(objects),
		"images":  len(section.Images),
	})
	return section, nil
}

func (g *Gallery) isImage(key string) bool {
	ext := strings.ToLower(path.Ext(key))
	for _, e := range g.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// SectionTitle is the last path segment of prefix with only its first letter
// upper-cased, e.g. "Test/dirty" -> "Dirty".
func SectionTitle(prefix string) string {
	last := prefix
	if i := strings.LastIndex(prefix, "/"); i >= 0 {
		last = prefix[i+1:]
	}
	if last == "" {
		return ""
	}
	runes := []rune(strings.ToLower(last))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
