package response_models

import "gemquest/internal/models/db_models"

type FamilyResponse struct {
	Parent   ParentResponse    `json:"parent"`
	Children []db_models.Child `json:"children"`
}
