package config

import "sync"

// MediaConfig holds image processing and blob storage settings.
type MediaConfig struct {
	Backend             string `json:"backend"` // minio or local
	MediaRoot           string `json:"media_root"`
	CardMaxWidth        int    `json:"card_max_width"`
	CardMaxHeight       int    `json:"card_max_height"`
	ProfileMaxWidth     int    `json:"profile_max_width"`
	ProfileMaxHeight    int    `json:"profile_max_height"`
	WebPQuality         int    `json:"webp_quality"`
	DefaultProfileImage string `json:"default_profile_image"`
	MaxUploadBytes      int64  `json:"max_upload_bytes"`
}

var MediaConfigInstance *MediaConfig
var mediaConfigOnce sync.Once

// InitMediaConfig initializes media config.
func InitMediaConfig() {
	mediaConfigOnce.Do(func() {
		MediaConfigInstance = &MediaConfig{
			Backend:             getEnv("MEDIA_BACKEND", "minio"),
			MediaRoot:           getEnv("MEDIA_ROOT", "media"),
			CardMaxWidth:        getEnvInt("CARD_MAX_WIDTH", 800),
			CardMaxHeight:       getEnvInt("CARD_MAX_HEIGHT", 800),
			ProfileMaxWidth:     getEnvInt("PROFILE_MAX_WIDTH", 300),
			ProfileMaxHeight:    getEnvInt("PROFILE_MAX_HEIGHT", 300),
			WebPQuality:         getEnvInt("WEBP_QUALITY", 80),
			DefaultProfileImage: getEnv("DEFAULT_PROFILE_IMAGE", "default.jpg"),
			MaxUploadBytes:      10 * 1024 * 1024, // 10MB per image upload
		}
	})
}
