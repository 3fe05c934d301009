package server

import "imgconv/api"

var (
	errRequestBodyDecode = api.Error{Error: "Error reading request body"}
	errNoFile            = api.Error{Code: "no_file", Error: "No file supplied in request"}
	errInvalidFileType   = api.Error{Code: "invalid_file_type", Error: "File extension is not a supported raster format"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Supplied file is not a valid raster image"}
	errMissingFields     = api.Error{Code: "missing_fields", Error: "Missing filename or format"}
	errUnsupportedFormat = api.Error{Code: "unsupported_format", Error: "Unsupported target format"}
	errFileNotFound      = api.Error{Code: "not_found", Error: "File not found"}
	errConvert           = api.Error{Code: "convert_error", Error: "An error occurred while converting the image"}
	errStoreFile         = api.Error{Error: "Error storing uploaded file"}
	errCleanup           = api.Error{Code: "cleanup_error", Error: "Error removing expired files"}
)
