package api

type Error struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

type UploadResponse struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Format       string `json:"format"`
	Mode         string `json:"mode"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

type ConvertRequest struct {
	Filename string `json:"filename"`
	Format   string `json:"format"`
}

type ConvertResponse struct {
	Success     bool   `json:"success"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
}

type CleanupResponse struct {
	Removed int    `json:"removed"`
	Message string `json:"message"`
}
