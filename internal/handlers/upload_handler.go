package handlers

import (
	"encoding/json"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"goldsite/internal/config"
)

type UploadHandler struct {
	s3Client      *s3.Client
	bucket        string
	publicBaseURL string
}

func NewUploadHandler(s3Config *config.S3Config) *UploadHandler {
	return &UploadHandler{
		s3Client:      s3Config.Client,
		bucket:        s3Config.Bucket,
		publicBaseURL: s3Config.PublicBaseURL,
	}
}

type uploadedFile struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Upload streams media files (images, PDFs) to S3 and returns their
// public URLs. Editors use the URLs as image, thumbnail and resource
// file links in content records.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20 // 32MB max memory
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "No files uploaded")
		return
	}

	var uploaded []uploadedFile
	uploader := manager.NewUploader(h.s3Client)

	for _, fileHeader := range files {
		if !allowedUploadType(fileHeader) {
			log.Printf("Rejected upload %s: unsupported content type %s", fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
			continue
		}

		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("Failed to open file %s: %v", fileHeader.Filename, err)
			continue
		}

		key := filepath.Join("uploads", uuid.NewString()+filepath.Ext(fileHeader.Filename))

		_, err = uploader.Upload(r.Context(), &s3.PutObjectInput{
			Bucket:      aws.String(h.bucket),
			Key:         aws.String(key),
			Body:        file,
			ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
		})
		file.Close()

		if err != nil {
			log.Printf("Failed to upload file %s to S3: %v", fileHeader.Filename, err)
			continue
		}

		uploaded = append(uploaded, uploadedFile{
			Name: fileHeader.Filename,
			Key:  key,
			URL:  h.publicBaseURL + "/" + key,
			Size: fileHeader.Size,
		})
	}

	if len(uploaded) == 0 {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "upload_failed", "Failed to upload any files")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(uploaded); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func allowedUploadType(header *multipart.FileHeader) bool {
	switch header.Header.Get("Content-Type") {
	case "image/jpeg", "image/png", "image/gif", "image/webp", "application/pdf":
		return true
	default:
		return false
	}
}
