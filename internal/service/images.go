package service

import "slices"

// ImageAttachments transforms an edit buffer's ordered image list. It is pure:
// every call returns a fresh slice and never mutates its input.
type ImageAttachments struct{}

// Append adds url at the end, keeping the existing order. Duplicates are allowed.
func (ImageAttachments) Append(images []string, url string) []string {
	out := make([]string, 0, len(images)+1)
	out = append(out, images...)
	return append(out, url)
}

// RemoveAt drops the element at index. An out-of-range index returns an
// unchanged copy.
func (ImageAttachments) RemoveAt(images []string, index int) []string {
	out := slices.Clone(images)
	if out == nil {
		out = []string{}
	}
	if index < 0 || index >= len(out) {
		return out
	}
	return slices.Delete(out, index, index+1)
}
