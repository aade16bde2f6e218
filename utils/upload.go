package utils

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

const uploadDir = "./static/uploads"

// UploadImages accepts multipart image uploads (field "images"), stores the
// original plus a 320px-wide thumbnail, and returns the served paths. Used
// for batch photos, land proofs and purity reports.
func UploadImages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		RespondWithJSON(w, http.StatusBadRequest, M{"success": false, "message": "Invalid form"})
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		RespondWithJSON(w, http.StatusBadRequest, M{"success": false, "message": "No images provided"})
		return
	}

	os.MkdirAll(filepath.Join(uploadDir, "batches"), os.ModePerm)
	os.MkdirAll(filepath.Join(uploadDir, "thumbs"), os.ModePerm)

	var urls, thumbs []string
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			continue
		}
		img, err := imaging.Decode(file)
		file.Close()
		if err != nil {
			RespondWithJSON(w, http.StatusBadRequest, M{"success": false, "message": "Unsupported image format"})
			return
		}

		filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(header.Filename))
		fullPath := filepath.Join(uploadDir, "batches", filename)
		thumbPath := filepath.Join(uploadDir, "thumbs", filename)

		if err := imaging.Save(img, fullPath); err != nil {
			RespondWithJSON(w, http.StatusInternalServerError, M{"success": false, "message": "Failed to store image"})
			return
		}
		thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
		if err := imaging.Save(thumb, thumbPath); err != nil {
			RespondWithJSON(w, http.StatusInternalServerError, M{"success": false, "message": "Failed to store thumbnail"})
			return
		}

		urls = append(urls, "/static/uploads/batches/"+filename)
		thumbs = append(thumbs, "/static/uploads/thumbs/"+filename)
	}

	RespondWithJSON(w, http.StatusOK, M{"success": true, "urls": urls, "thumbnails": thumbs})
}
