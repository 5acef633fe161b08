package dto

import (
	"assessment-assistant-be/internal/entity"
)

type ContentListResponse struct {
	Articles []entity.Article `json:"articles"`
}
