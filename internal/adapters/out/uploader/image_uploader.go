package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
)

// ImageUploader - multipart-загрузка на внешний хостинг изображений,
// обратно приходит публичный https-URL
type ImageUploader struct {
	client *http.Client
	url    string
	apiKey string
	logger out.LoggerPort
}

type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
}

func NewImageUploader(cfg *config.Config, logger out.LoggerPort) *ImageUploader {
	return &ImageUploader{
		client: &http.Client{Timeout: 30 * time.Second},
		url:    cfg.Uploader.URL,
		apiKey: cfg.Uploader.Key,
		logger: logger,
	}
}

func (u *ImageUploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("key", u.apiKey); err != nil {
		return "", err
	}

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		u.logger.Error("uploader.upload_failed", out.LogFields{
			"filename": filename,
			"error":    err.Error(),
		})
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		u.logger.Error("uploader.upload_failed", out.LogFields{
			"filename": filename,
			"status":   resp.StatusCode,
		})
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if !parsed.Success || parsed.Data.URL == "" {
		return "", fmt.Errorf("upload rejected by image host")
	}

	u.logger.Debug("uploader.upload_success", out.LogFields{
		"filename": filename,
	})

	return parsed.Data.URL, nil
}
