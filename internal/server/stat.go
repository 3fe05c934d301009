package server

import (
	"imgconv/api"
	"imgconv/pkg/model"
)

type convertResponseWithStats struct {
	api.ConvertResponse
	Stats humanizedConvertStats `json:"stats"`
}

type humanizedConvertStats struct {
	model.ConvertStats
	DecodeHuman string `json:"decode_human"`
	EncodeHuman string `json:"encode_human"`
}

func toHumanizedConvertStats(convertStats model.ConvertStats) humanizedConvertStats {
	return humanizedConvertStats{
		ConvertStats: convertStats,
		DecodeHuman:  convertStats.Decode.String(),
		EncodeHuman:  convertStats.Encode.String(),
	}
}
