package model

import (
	"time"
)

type ConvertStats struct {
	Decode time.Duration `json:"decode"`
	Encode time.Duration `json:"encode"`
}
