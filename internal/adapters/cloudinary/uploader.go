// Package cloudinary uploads listing images to Cloudinary with an unsigned
// upload preset and reports one message per file.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Muhamedyehya/aqar-admin/internal/domain/model"
	apperrors "github.com/Muhamedyehya/aqar-admin/internal/errors"
	"github.com/Muhamedyehya/aqar-admin/internal/ports"
)

const (
	defaultAPIBase     = "https://api.cloudinary.com"
	defaultMaxFiles    = 10
	defaultConcurrency = 3
	defaultTimeout     = 60 * time.Second
)

// DefaultAllowedFormats are the image formats accepted when none are configured.
var DefaultAllowedFormats = []string{"png", "jpg", "jpeg", "webp"}

var _ ports.Uploader = (*Uploader)(nil)

// Config configures the uploader.
type Config struct {
	CloudName      string
	UploadPreset   string
	Folder         string
	MaxFiles       int
	AllowedFormats []string
	Concurrency    int
	APIBase        string
	HTTPClient     *http.Client
	Logger         *slog.Logger
}

// Uploader posts files or remote URLs to the unsigned upload endpoint.
type Uploader struct {
	endpoint    string
	preset      string
	folder      string
	maxFiles    int
	formats     []string
	concurrency int
	client      *http.Client
	logger      *slog.Logger
}

// New validates cfg and builds an Uploader.
func New(cfg Config) (*Uploader, error) {
	cloud := strings.TrimSpace(cfg.CloudName)
	if cloud == "" {
		return nil, errors.New("cloudinary cloud name is required")
	}
	preset := strings.TrimSpace(cfg.UploadPreset)
	if preset == "" {
		return nil, errors.New("cloudinary upload preset is required")
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")
	if base == "" {
		base = defaultAPIBase
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid cloudinary api base: %w", err)
	}

	formats := make([]string, 0, len(cfg.AllowedFormats))
	for _, f := range cfg.AllowedFormats {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		formats = slices.Clone(DefaultAllowedFormats)
	}

	maxFiles := cfg.MaxFiles
	if maxFiles <= 0 {
		maxFiles = defaultMaxFiles
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Uploader{
		endpoint:    fmt.Sprintf("%s/v1_1/%s/image/upload", base, url.PathEscape(cloud)),
		preset:      preset,
		folder:      strings.Trim(strings.TrimSpace(cfg.Folder), "/"),
		maxFiles:    maxFiles,
		formats:     formats,
		concurrency: concurrency,
		client:      hc,
		logger:      logger.With("component", "cloudinary"),
	}, nil
}

// Upload sends every source (a local path or an http(s) URL) and posts one
// message per file to out as each upload completes, so messages arrive in
// completion order. Per-file failures are reported as messages; the returned
// error is only for batch-level problems. Upload does not close out.
func (u *Uploader) Upload(ctx context.Context, sources []string, out chan<- model.UploadMessage) error {
	if len(sources) == 0 {
		return nil
	}
	if len(sources) > u.maxFiles {
		return apperrors.Validation(fmt.Sprintf("at most %d files per upload, got %d", u.maxFiles, len(sources)))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for _, src := range sources {
		src := src
		g.Go(func() error {
			msg := u.uploadOne(gctx, src)
			select {
			case out <- msg:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	return g.Wait()
}

func (u *Uploader) uploadOne(ctx context.Context, src string) model.UploadMessage {
	src = strings.TrimSpace(src)
	info, err := u.send(ctx, src)
	if err != nil {
		u.logger.WarnContext(ctx, "upload failed", "source", src, "error", err)
		return model.UploadMessage{Err: fmt.Errorf("upload %s: %w", src, err)}
	}
	u.logger.InfoContext(ctx, "upload complete", "source", src, "public_id", info.PublicID, "bytes", info.Bytes)
	return model.UploadMessage{Event: &model.UploadEvent{Event: model.UploadEventSuccess, Info: info}}
}

func (u *Uploader) send(ctx context.Context, src string) (model.UploadInfo, error) {
	remote := isRemote(src)
	if err := u.checkFormat(src, remote); err != nil {
		return model.UploadInfo{}, err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := u.writeFields(mw, src, remote); err != nil {
		return model.UploadInfo{}, err
	}
	if err := mw.Close(); err != nil {
		return model.UploadInfo{}, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return model.UploadInfo{}, fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return model.UploadInfo{}, apperrors.Network(err, "upload request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return model.UploadInfo{}, apperrors.Network(err, "read upload response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.UploadInfo{}, apperrors.Rejected(resp.StatusCode, errorMessage(data))
	}

	var info model.UploadInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return model.UploadInfo{}, fmt.Errorf("decode upload response: %w", err)
	}
	if info.SecureURL == "" {
		return model.UploadInfo{}, errors.New("upload response carried no secure_url")
	}
	return info, nil
}

func (u *Uploader) writeFields(mw *multipart.Writer, src string, remote bool) error {
	if err := mw.WriteField("upload_preset", u.preset); err != nil {
		return fmt.Errorf("write upload_preset: %w", err)
	}
	if u.folder != "" {
		if err := mw.WriteField("folder", u.folder); err != nil {
			return fmt.Errorf("write folder: %w", err)
		}
	}
	if remote {
		if err := mw.WriteField("file", src); err != nil {
			return fmt.Errorf("write file url: %w", err)
		}
		return nil
	}

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()
	part, err := mw.CreateFormFile("file", filepath.Base(src))
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return nil
}

// checkFormat rejects sources whose extension is not allowed. Remote URLs
// without an extension are left to the preset's own restrictions.
func (u *Uploader) checkFormat(src string, remote bool) error {
	name := src
	if remote {
		parsed, err := url.Parse(src)
		if err != nil {
			return apperrors.ValidationField("source", "invalid image url")
		}
		name = parsed.Path
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if ext == "" && remote {
		return nil
	}
	if !slices.Contains(u.formats, ext) {
		return apperrors.ValidationField("source", fmt.Sprintf("format %q not allowed (allowed: %s)", ext, strings.Join(u.formats, ", ")))
	}
	return nil
}

func isRemote(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func errorMessage(data []byte) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Error.Message)
}
