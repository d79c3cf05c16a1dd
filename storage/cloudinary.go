package storage

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Cloudinary configuration via environment variables:
// CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET, CLOUDINARY_FOLDER (optional)

func InitializeCloudinary() {
	if os.Getenv("CLOUDINARY_CLOUD_NAME") == "" {
		log.Println("⚠️  CLOUDINARY_CLOUD_NAME not set, image uploads will fail")
	}
}

// SurpriseImagePath builds the blob path for one uploaded image. The surprise
// id prefixes every upload so the blobs of one record stay together.
func SurpriseImagePath(surpriseID string, index int, fileName string) string {
	ext := "jpg"
	if i := strings.LastIndex(fileName, "."); i != -1 && i < len(fileName)-1 {
		ext = fileName[i+1:]
	}
	return fmt.Sprintf("%s/images/%d_%d.%s", surpriseID, time.Now().UnixMilli(), index, ext)
}

// UploadSurpriseImage stores one image under the given path and returns its
// public URL.
func UploadSurpriseImage(path string, data []byte) (string, error) {
	payload := base64.StdEncoding.EncodeToString(data)
	return uploadSignedImage(payload, strings.TrimSuffix(path, "."+pathExt(path)))
}

// UploadBase64Image handles a base64 (or data-URL) image upload, returning
// {"url": "..."} with an empty url on failure. Kept map-shaped for the
// /api/upload route.
func UploadBase64Image(base64ImageSrc string, publicID string) map[string]string {
	if base64ImageSrc == "" {
		fmt.Printf("ERROR: Empty base64 image\n")
		return map[string]string{"url": ""}
	}

	payload := base64ImageSrc
	if i := strings.Index(base64ImageSrc, ","); i != -1 {
		payload = base64ImageSrc[i+1:]
	}

	uploadedURL, err := uploadSignedImage(payload, publicID)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return map[string]string{"url": ""}
	}
	return map[string]string{"url": uploadedURL}
}

func pathExt(path string) string {
	if i := strings.LastIndex(path, "."); i != -1 {
		return path[i+1:]
	}
	return ""
}

// uploadSignedImage performs a signed upload against the Cloudinary REST API.
func uploadSignedImage(base64Payload string, publicID string) (string, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	folder := os.Getenv("CLOUDINARY_FOLDER")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return "", errors.New("missing Cloudinary env vars")
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + cloudName + "/image/upload"

	finalPublicID := publicID
	if folder != "" {
		finalPublicID = folder + "/" + publicID
	}

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+base64Payload)
	form.Add("api_key", apiKey)
	if finalPublicID != "" {
		form.Add("public_id", finalPublicID)
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	form.Add("timestamp", timestamp)

	// Cloudinary signatures are SHA1 over the sorted params plus the secret
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", finalPublicID, timestamp, apiSecret)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(signatureString)))
	form.Add("signature", signature)

	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if res.StatusCode != 200 {
		return "", fmt.Errorf("upload failed with status %d: %s", res.StatusCode, string(body))
	}

	var cloudRes struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &cloudRes); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if cloudRes.Error.Message != "" {
		return "", errors.New("cloudinary error: " + cloudRes.Error.Message)
	}

	uploadedURL := cloudRes.SecureURL
	if uploadedURL == "" {
		uploadedURL = cloudRes.URL
	}
	if uploadedURL == "" {
		return "", errors.New("no URL returned from Cloudinary")
	}
	return uploadedURL, nil
}
