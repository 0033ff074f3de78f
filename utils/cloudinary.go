package utils

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader pushes listing media to Cloudinary and returns the secure URL.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

// NewUploader builds a Cloudinary client from explicit credentials.
func NewUploader(cloudName, apiKey, apiSecret string) (*Uploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &Uploader{cld: cld}, nil
}

// Upload sends the file to Cloudinary under the given folder and returns
// the hosted URL.
func (u *Uploader) Upload(ctx context.Context, file interface{}, publicID, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   folder,
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
