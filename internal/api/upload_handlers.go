package api

import (
	"io"
	"net/http"

	"github.com/floydfdes/api-fridge-chef/internal/auth"
	"github.com/floydfdes/api-fridge-chef/internal/images"
	"github.com/floydfdes/api-fridge-chef/internal/logx"
)

type UploadResponse struct {
	Image   string `json:"image"`
	Message string `json:"message"`
}

// UploadFridgeImage accepts a multipart "image" file, stores it as a
// base64 document, and echoes back the data URI.
func (api *API) UploadFridgeImage(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	// One extra MB of headroom for the multipart framing.
	if err := r.ParseMultipartForm(images.MaxImageBytes + 1<<20); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, images.MaxImageBytes+1))
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to read uploaded image")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	dataURI, err := images.FromBytes(data, mimeType)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(images.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to process uploaded image")
		return
	}

	if _, err := api.Db.AddFridgeImage(r.Context(), currentUser.Id, dataURI); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to store uploaded image")
		return
	}

	respondWithJSON(w, http.StatusOK, UploadResponse{
		Image:   dataURI,
		Message: "Image uploaded successfully",
	})
}

func (api *API) RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: "Welcome to the Fridge Chef API"})
}
