package config

import "strings"

// CloudinaryConfig configures unsigned image uploads.
type CloudinaryConfig struct {
	CloudName    string `env:"CLOUD_NAME"`
	UploadPreset string `env:"UPLOAD_PRESET"`
	Folder       string `env:"FOLDER"        envDefault:"aqarjed/uploads"`

	// MaxFiles caps the number of files per upload batch.
	MaxFiles int `env:"MAX_FILES" envDefault:"10"`

	// AllowedFormats lists accepted file extensions.
	AllowedFormats []string `env:"ALLOWED_FORMATS" envDefault:"png;jpg;jpeg;webp" envSeparator:";"`

	// Concurrency bounds simultaneous uploads.
	Concurrency int `env:"CONCURRENCY" envDefault:"3"`

	// APIBase overrides the upload API origin.
	APIBase string `env:"API_BASE" envDefault:"https://api.cloudinary.com"`
}

// Sanitize applies guardrails to upload configuration values.
func (c *CloudinaryConfig) Sanitize() {
	c.CloudName = strings.TrimSpace(c.CloudName)
	c.UploadPreset = strings.TrimSpace(c.UploadPreset)
	if c.MaxFiles <= 0 {
		c.MaxFiles = 10
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
	formats := c.AllowedFormats[:0]
	for _, f := range c.AllowedFormats {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	c.AllowedFormats = formats
}

// Enabled reports whether uploads are configured.
func (c *CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.UploadPreset != ""
}
