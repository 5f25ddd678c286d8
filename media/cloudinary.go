// Package media uploads editor-supplied images and hands back the URL stored
// in section content. Two backends ship: Cloudinary for hosted deployments
// and an inline data-URI encoder for offline or embedded use.
package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
)

// CloudinaryUploader pushes images to Cloudinary and returns their secure
// delivery URL.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

var _ interfaces.ImageUploader = (*CloudinaryUploader)(nil)

// NewCloudinaryUploader builds an uploader from a CLOUDINARY_URL style
// connection string. folder is optional; when set, uploads are grouped under
// it in the media library.
func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("media: cloudinary init: %w", err)
	}
	return &CloudinaryUploader{client: client, folder: folder}, nil
}

// Upload streams the image to Cloudinary and returns its HTTPS URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	result, err := u.client.Upload.Upload(ctx, content, uploader.UploadParams{
		Folder:   u.folder,
		PublicID: filename,
	})
	if err != nil {
		return "", fmt.Errorf("media: upload %s: %w", filename, err)
	}
	return result.SecureURL, nil
}
