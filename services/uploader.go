package services

import (
	"valentine-surprise-server/storage"
	"valentine-surprise-server/wizard"
)

// CloudinaryUploader implements wizard.Uploader on top of the storage layer.
type CloudinaryUploader struct{}

// Upload stores the images strictly one at a time, in order. The first
// failure aborts the batch; blobs already uploaded stay behind (no rollback,
// no retry here).
func (CloudinaryUploader) Upload(surpriseID string, images []wizard.File) ([]string, error) {
	urls := make([]string, 0, len(images))
	for i, img := range images {
		path := storage.SurpriseImagePath(surpriseID, i, img.Name)
		url, err := storage.UploadSurpriseImage(path, img.Data)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
