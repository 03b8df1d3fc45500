package storage

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"restring/config"
	"restring/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// MaxUploadSize is the ceiling for a single image upload.
const MaxUploadSize = 5 << 20 // 5 MiB

var (
	uploadDir string
	secret    []byte
	baseURL   string
)

func Init(cfg config.Config) error {
	uploadDir = cfg.UploadDir
	secret = []byte(cfg.MediaSecret)
	baseURL = strings.TrimSuffix(cfg.PublicBaseURL, "/")
	return os.MkdirAll(uploadDir, 0755)
}

// NewKey builds a collision-resistant object key: unix-time prefix plus
// a random suffix. No overwrite detection is needed.
func NewKey(ext string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.NewString(), ext)
}

var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Upload accepts a multipart image, validates type and size before any
// disk write, stores it under a fresh key, and returns a long-lived
// signed confirmation link.
func Upload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+4096)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid or oversized form data")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image file missing")
		return
	}
	defer file.Close()

	if header.Size > MaxUploadSize {
		utils.RespondWithError(w, http.StatusBadRequest, "File exceeds 5 MiB limit")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	ext, ok := extByMIME[mimeType]
	if !ok || !utils.SupportedImageTypes[mimeType] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid file type. Supported formats: JPEG, PNG, WebP, GIF.")
		return
	}

	key := NewKey(ext)
	path := filepath.Join(uploadDir, key)

	dst, err := os.Create(path)
	if err != nil {
		log.Printf("storage: create %s failed: %v", path, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Unable to save file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		log.Printf("storage: write %s failed: %v", path, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving file")
		return
	}

	resp := utils.M{
		"key": key,
		"url": SignedURL(key, ConfirmTTL),
	}
	if thumbKey := makeThumbnail(key, path); thumbKey != "" {
		resp["thumbnail"] = SignedURL(thumbKey, ConfirmTTL)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// makeThumbnail writes a 300px-wide thumbnail next to the original.
// Best-effort: unsupported formats (webp) are skipped.
func makeThumbnail(key, path string) string {
	img, err := imaging.Open(path)
	if err != nil {
		log.Printf("storage: thumbnail decode %s skipped: %v", key, err)
		return ""
	}
	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	thumbKey := "thumb-" + key
	if err := imaging.Save(thumb, filepath.Join(uploadDir, thumbKey)); err != nil {
		log.Printf("storage: thumbnail save %s failed: %v", key, err)
		return ""
	}
	return thumbKey
}

// GetImageURL issues a short-lived signed link for an existing object.
func GetImageURL(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("filename")
	if name == "" || filepath.Base(name) != name {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid file name")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"url": SignedURL(name, ViewTTL)})
}

// ServeMedia serves a stored object when the link's signature and
// expiry check out.
func ServeMedia(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("filename")
	if name == "" || filepath.Base(name) != name {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid file name")
		return
	}

	exp := r.URL.Query().Get("exp")
	sig := r.URL.Query().Get("sig")
	if !verifySignature(name, exp, sig) {
		utils.RespondWithError(w, http.StatusForbidden, "Link is invalid or expired")
		return
	}

	path := filepath.Join(uploadDir, name)
	if _, err := os.Stat(path); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Object not found")
		return
	}
	http.ServeFile(w, r, path)
}
