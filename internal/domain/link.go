package domain

type LinkName string

// RawLink is a share link as it appears in the configuration file.
type RawLink struct {
	Name LinkName `json:"name" yaml:"name" validate:"required"`
	URL  string   `json:"url" yaml:"url" validate:"required"`
}
