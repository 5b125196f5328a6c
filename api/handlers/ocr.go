package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"

	"github.com/satlantas/laka-report-api/config"
	"github.com/satlantas/laka-report-api/models"
)

// maxOcrUploadBytes caps identity document uploads at 10 MB.
const maxOcrUploadBytes = 10 << 20

// Ocr extracts identity fields from uploaded document photos via the
// external OCR service. Uploads are archived to Cloudinary when a
// client is configured.
type Ocr struct {
	OcrURL     string
	Client     *http.Client
	Cloudinary *cloudinary.Cloudinary
}

type ocrServiceRequest struct {
	ImageBase64  string `json:"image_base64"`
	MimeType     string `json:"mime_type"`
	DocumentType string `json:"document_type"`
}

// ExtractDocumentHandler accepts a multipart image and document type
// and returns the extracted fields
func (o Ocr) ExtractDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxOcrUploadBytes); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	docType := r.FormValue("documentType")
	switch docType {
	case models.DocumentKTP, models.DocumentSIM, models.DocumentKK, models.DocumentSTNK, models.DocumentLainnya:
	default:
		config.ErrorStatus("invalid document type", http.StatusBadRequest, w, fmt.Errorf("unknown documentType %q", docType))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		config.ErrorStatus("missing image file", http.StatusBadRequest, w, err)
		return
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(io.LimitReader(file, maxOcrUploadBytes))
	if err != nil {
		config.ErrorStatus("failed to read image", http.StatusBadRequest, w, err)
		return
	}

	result, err := o.extract(r, imageBytes, header.Header.Get("Content-Type"), docType)
	if err != nil {
		config.ErrorStatus("ocr service unavailable", http.StatusBadGateway, w, err)
		return
	}
	result.DocumentType = docType

	if o.Cloudinary != nil {
		if url := o.archivePhoto(r, imageBytes); url != "" {
			result.PhotoURL = url
		}
	}

	b, err := json.Marshal(result)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (o Ocr) extract(r *http.Request, image []byte, mimeType, docType string) (*models.OcrResult, error) {
	body, err := json.Marshal(ocrServiceRequest{
		ImageBase64:  base64.StdEncoding.EncodeToString(image),
		MimeType:     mimeType,
		DocumentType: docType,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, o.OcrURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := o.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocr service returned status %d", resp.StatusCode)
	}

	result := &models.OcrResult{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, err
	}
	return result, nil
}

// archivePhoto stores the uploaded document photo. A failed upload only
// drops the archived URL, never the extraction result.
func (o Ocr) archivePhoto(r *http.Request, image []byte) string {
	resp, err := o.Cloudinary.Upload.Upload(r.Context(), bytes.NewReader(image), uploader.UploadParams{
		Folder: "laka-report-identitas",
	})
	if err != nil {
		zap.S().Warnf("cloudinary upload failed: %v", err)
		return ""
	}
	return resp.SecureURL
}
