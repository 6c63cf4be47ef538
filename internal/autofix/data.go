package autofix

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// dataSource describes a known static data file download.
type dataSource struct {
	URL         string
	Dest        string
	Size        string
	Description string
}

func dataSources(wordlistsDir string) map[string]dataSource {
	return map[string]dataSource{
		"rockyou": {
			URL:         "https://github.com/brannondorsey/naive-hashcat/releases/download/data/rockyou.txt",
			Dest:        filepath.Join(wordlistsDir, "rockyou.txt"),
			Size:        "14M",
			Description: "Common password wordlist",
		},
		"common": {
			URL:         "https://raw.githubusercontent.com/v0re/dirb/master/wordlists/common.txt",
			Dest:        filepath.Join(wordlistsDir, "common.txt"),
			Size:        "4K",
			Description: "Common directory names",
		},
		"subdomains": {
			URL:         "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Discovery/DNS/subdomains-top1million-5000.txt",
			Dest:        filepath.Join(wordlistsDir, "subdomains.txt"),
			Size:        "33K",
			Description: "Common subdomain names",
		},
	}
}

// DataHandler implements AUTO-DATA: download a known wordlist/template file
// to its canonical path with a plain net/http client (no curl/wget shellout,
// unlike the original — nothing in the example pack contributes an HTTP
// client library, so this is one of the few places stdlib is the right call).
type DataHandler struct {
	DataType     string
	SourceURL    string
	WordlistsDir string
	DataDir      string

	DestPath string
}

func NewDataHandler(dataType, sourceURL, wordlistsDir, dataDir string) *DataHandler {
	return &DataHandler{DataType: dataType, SourceURL: sourceURL, WordlistsDir: wordlistsDir, DataDir: dataDir}
}

func (h *DataHandler) CanFix(ctx context.Context) bool {
	return true
}

func (h *DataHandler) resolve() (url, dest string, ok bool) {
	if src, found := dataSources(h.WordlistsDir)[h.DataType]; found {
		return src.URL, src.Dest, true
	}
	if h.SourceURL != "" {
		return h.SourceURL, filepath.Join(h.DataDir, h.DataType), true
	}
	return "", "", false
}

func (h *DataHandler) Fix(ctx context.Context) bool {
	url, dest, ok := h.resolve()
	if !ok {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}

	out, err := os.Create(dest)
	if err != nil {
		return false
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return false
	}

	if _, err := os.Stat(dest); err != nil {
		return false
	}
	h.DestPath = dest
	return true
}

func (h *DataHandler) PromptText(ctx context.Context) string {
	if src, ok := dataSources(h.WordlistsDir)[h.DataType]; ok {
		return fmt.Sprintf("Download %s (%s) - %s?", h.DataType, src.Size, src.Description)
	}
	return fmt.Sprintf("Download %s?", h.DataType)
}

// AvailableData describes one downloadable source and its on-disk status.
type AvailableData struct {
	Name        string
	URL         string
	Dest        string
	Size        string
	Description string
	Exists      bool
}

// ListAvailableData enumerates the known data sources for display.
func ListAvailableData(wordlistsDir string) []AvailableData {
	sources := dataSources(wordlistsDir)
	out := make([]AvailableData, 0, len(sources))
	for name, src := range sources {
		_, err := os.Stat(src.Dest)
		out = append(out, AvailableData{
			Name:        name,
			URL:         src.URL,
			Dest:        src.Dest,
			Size:        src.Size,
			Description: src.Description,
			Exists:      err == nil,
		})
	}
	return out
}
