// internals/helpers/oss/oss_client.go
package oss

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"presensiku_backend/internals/configs"
)

// prefix object untuk bukti gambar presensi
const imageKeyPrefix = "data/kehadiran/image"

var allowedImageExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// Client membungkus bucket OSS untuk upload bukti check-in/check-out.
type Client struct {
	bucket    *oss.Bucket
	publicURL string
}

func NewClient() (*Client, error) {
	endpoint := configs.GetEnv("OSS_ENDPOINT")
	accessKey := configs.GetEnv("OSS_ACCESS_KEY")
	secretKey := configs.GetEnv("OSS_SECRET_KEY")
	bucketName := configs.GetEnv("OSS_BUCKET")

	cli, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("gagal inisialisasi client OSS: %w", err)
	}

	bucket, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka bucket %s: %w", bucketName, err)
	}

	return &Client{
		bucket:    bucket,
		publicURL: configs.GetEnv("OSS_PUBLIC_URL", fmt.Sprintf("https://%s.%s", bucketName, endpoint)),
	}, nil
}

// UploadImage menyimpan file gambar presensi dan mengembalikan URL publiknya.
// Skema nama object: data/kehadiran/image/pict-<timestamp>-<rand><ext>
func (c *Client) UploadImage(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedImageExt[ext]; !ok {
		return "", fmt.Errorf("ekstensi file %s tidak diizinkan", ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("%s/pict-%d-%d%s",
		imageKeyPrefix, time.Now().UnixMilli(), rand.Intn(10000), ext)

	if err := c.bucket.PutObject(key, src); err != nil {
		return "", fmt.Errorf("gagal upload object %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimRight(c.publicURL, "/"), key), nil
}

// DeleteByURL menghapus object berdasarkan URL publik yang tersimpan di record.
func (c *Client) DeleteByURL(url string) error {
	idx := strings.Index(url, imageKeyPrefix)
	if idx < 0 {
		return fmt.Errorf("URL %s bukan object presensi", url)
	}
	return c.bucket.DeleteObject(url[idx:])
}
