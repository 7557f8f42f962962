package models

// DownloadURLs holds every location a book can be fetched from. IPFS is empty
// when the catalog has no content identifier for the book.
type DownloadURLs struct {
	IPFS          string   `json:"ipfs,omitempty"`
	LibgenMirrors []string `json:"libgen_mirrors"`
}

// All returns the IPFS URL (when known) followed by the mirrors.
func (d *DownloadURLs) All() []string {
	urls := make([]string, 0, len(d.LibgenMirrors)+1)
	if d.IPFS != "" {
		urls = append(urls, d.IPFS)
	}
	return append(urls, d.LibgenMirrors...)
}
